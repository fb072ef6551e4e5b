package valuation

import (
	"math"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// RoundingPrecision controls monetary rounding (100 = two decimal places).
const RoundingPrecision = 100

// round returns v rounded to two decimal places.
func round(v float64) float64 {
	return math.Round(v*RoundingPrecision) / RoundingPrecision
}

// daysPerMonth converts held days to held months for carry-cost accrual.
const daysPerMonth = 30.0

// Engine computes herd valuations under a fixed set of assumptions. It is
// stateless apart from the assumptions and is constructed once and injected
// into whichever component needs it.
type Engine struct {
	assumptions Assumptions
}

// NewEngine creates a valuation engine with the provided assumptions.
func NewEngine(assumptions Assumptions) *Engine {
	return &Engine{assumptions: assumptions}
}

// Assumptions returns the engine's configured assumptions.
func (e *Engine) Assumptions() Assumptions {
	return e.assumptions
}

// ValueHerd produces the valuation of a single herd at the given date using
// an already-resolved price. It never fails: missing optional breeding fields
// degrade to zero accrual rather than error.
//
// The derived fields satisfy, exactly:
//
//	GrossValue = PhysicalValue + BreedingAccrual
//	NetValue = GrossValue - MortalityDeduction
//	NetRealizableValue = NetValue - CostToCarry
func (e *Engine) ValueHerd(herd model.Herd, pricePerKg float64, priceSource string, today time.Time) model.HerdValuation {
	evalDate := today
	if herd.UseCreationDateForWeight {
		evalDate = herd.CreatedAt
	}

	oldRate := herd.DailyWeightGain
	if herd.PreviousDailyWeightGain != nil {
		oldRate = *herd.PreviousDailyWeightGain
	}

	projectedWeight := ProjectWeight(
		herd.InitialWeightKg,
		herd.CreatedAt,
		herd.DWGChangeDate,
		oldRate,
		herd.DailyWeightGain,
		evalDate,
	)

	physicalValue := round(float64(herd.HeadCount) * projectedWeight * pricePerKg)
	breedingAccrual := round(e.breedingAccrual(herd, pricePerKg, today))

	grossValue := physicalValue + breedingAccrual
	mortalityDeduction := round(grossValue * e.assumptions.MortalityRate)
	netValue := grossValue - mortalityDeduction

	monthsHeld := float64(daysBetween(herd.CreatedAt, today)) / daysPerMonth
	costToCarry := round(e.assumptions.MonthlyCarryCost * monthsHeld)

	return model.HerdValuation{
		HerdID:             herd.ID,
		ProjectedWeightKg:  projectedWeight,
		PricePerKg:         pricePerKg,
		PriceSource:        priceSource,
		PhysicalValue:      physicalValue,
		BreedingAccrual:    breedingAccrual,
		GrossValue:         grossValue,
		MortalityDeduction: mortalityDeduction,
		NetValue:           netValue,
		CostToCarry:        costToCarry,
		NetRealizableValue: netValue - costToCarry,
		ValuationDate:      today,
	}
}

// breedingAccrual values unborn progeny on a pregnant breeder herd,
// pro-rated by gestation progress and expected calving/lambing rate.
// Accrual stops at term: once daysPregnant reaches the species' gestation
// length the progeny are no longer "unborn" and contribute nothing here.
func (e *Engine) breedingAccrual(herd model.Herd, pricePerKg float64, today time.Time) float64 {
	if !herd.IsBreeder || !herd.IsPregnant || herd.JoinedDate == nil {
		return 0
	}

	gestationDays := e.assumptions.Gestation(herd.Species)
	if gestationDays <= 0 {
		return 0
	}

	daysPregnant := daysBetween(*herd.JoinedDate, today)
	if daysPregnant >= gestationDays {
		return 0
	}

	calfValue := e.assumptions.ReferenceCalfWeightKg * pricePerKg
	accrualRate := float64(daysPregnant) / float64(gestationDays)
	return calfValue * accrualRate * herd.CalvingRate * float64(herd.HeadCount)
}

// initialValue is the unrealized-gains baseline for one herd: what the herd
// was worth at acquisition, priced at the same rate used for its current
// valuation.
func initialValue(herd model.Herd, pricePerKg float64) float64 {
	return round(float64(herd.HeadCount) * herd.InitialWeightKg * pricePerKg)
}
