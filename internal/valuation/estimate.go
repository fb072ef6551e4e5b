package valuation

import (
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// QuickEstimate produces a rough portfolio figure from head counts and flat
// assumed weight/price, without touching market data. It exists so callers
// can show something immediately while the precise aggregation runs; the
// distinct RoughSummary type keeps estimates from ever being mistaken for
// authoritative summaries.
//
// Returns nil when there are no active herds, matching Aggregate.
func (e *Engine) QuickEstimate(herds []model.Herd, now time.Time) *model.RoughSummary {
	var headCount, herdCount int
	for _, h := range herds {
		if h.IsSold {
			continue
		}
		headCount += h.HeadCount
		herdCount++
	}
	if herdCount == 0 {
		return nil
	}

	return &model.RoughSummary{
		EstimatedNetWorth: round(float64(headCount) * e.assumptions.AssumedWeightKg * e.assumptions.AssumedPricePerKg),
		TotalHeadCount:    headCount,
		HerdCount:         herdCount,
		AssumedWeightKg:   e.assumptions.AssumedWeightKg,
		AssumedPricePerKg: e.assumptions.AssumedPricePerKg,
		EstimatedAt:       now,
	}
}
