// Package valuation implements the livestock valuation engine: weight
// projection, per-herd valuation, market price resolution, and portfolio
// aggregation. The package is purely computational: it performs no I/O,
// holds no mutable shared state, and every function is safe for concurrent
// use. Herd records and price tables are materialized by callers before an
// aggregation pass begins.
package valuation

// Default assumption values. These were hard-coded in earlier versions of
// the product; they are named here and overridable per deployment.
const (
	DefaultMortalityRate         = 0.02   // 2% of gross value
	DefaultMonthlyCarryCost      = 100.0  // dollars per herd per month
	DefaultFallbackPricePerKg    = 4.00   // dollars per kg when no quote exists
	DefaultReferenceCalfWeightKg = 250.0  // weaning-weight basis for breeding accrual
	DefaultAssumedWeightKg       = 400.0  // quick-estimate liveweight
	DefaultAssumedPricePerKg     = 3.30   // quick-estimate price
	DefaultCattleGestationDays   = 283    // cattle joining to calving
	DefaultSmallStockGestation   = 150    // sheep, goats, pigs (see DESIGN.md)
)

// Assumptions carries the configurable constants of the valuation model.
// A zero value is not usable; construct with DefaultAssumptions and override
// fields as needed.
type Assumptions struct {
	// MortalityRate is the fraction of gross value deducted for expected
	// losses, in [0,1].
	MortalityRate float64

	// MonthlyCarryCost is the holding cost per herd per month of ownership.
	MonthlyCarryCost float64

	// FallbackPricePerKg is used when no market price exists for a category.
	FallbackPricePerKg float64

	// ReferenceCalfWeightKg is the weight basis used to value unborn progeny.
	ReferenceCalfWeightKg float64

	// AssumedWeightKg and AssumedPricePerKg feed the quick-estimate path only.
	AssumedWeightKg   float64
	AssumedPricePerKg float64

	// GestationDays maps species to gestation length in days. Species absent
	// from the map fall back to DefaultGestationDays.
	GestationDays        map[string]int
	DefaultGestationDays int

	// WorkerLimit bounds concurrent per-herd valuation during aggregation.
	// Values below 1 are treated as 1.
	WorkerLimit int
}

// DefaultAssumptions returns the documented default valuation assumptions.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		MortalityRate:         DefaultMortalityRate,
		MonthlyCarryCost:      DefaultMonthlyCarryCost,
		FallbackPricePerKg:    DefaultFallbackPricePerKg,
		ReferenceCalfWeightKg: DefaultReferenceCalfWeightKg,
		AssumedWeightKg:       DefaultAssumedWeightKg,
		AssumedPricePerKg:     DefaultAssumedPricePerKg,
		GestationDays: map[string]int{
			"Cattle": DefaultCattleGestationDays,
			"Sheep":  DefaultSmallStockGestation,
			"Goats":  DefaultSmallStockGestation,
			"Pigs":   DefaultSmallStockGestation,
		},
		DefaultGestationDays: DefaultSmallStockGestation,
		WorkerLimit:          4,
	}
}

// Gestation returns the gestation length in days for the given species.
func (a Assumptions) Gestation(species string) int {
	if days, ok := a.GestationDays[species]; ok {
		return days
	}
	return a.DefaultGestationDays
}
