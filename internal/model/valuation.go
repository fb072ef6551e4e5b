package model

import "time"

// HerdValuation is the derived valuation of a single herd at a point in time.
// It is recomputed on every aggregation pass and never persisted as a source
// of truth. All monetary values are rounded to two decimal places.
//
// Invariants:
//   - GrossValue = PhysicalValue + BreedingAccrual
//   - NetValue = GrossValue - MortalityDeduction
//   - NetRealizableValue = NetValue - CostToCarry
type HerdValuation struct {
	HerdID             string    `json:"herdId"`
	ProjectedWeightKg  float64   `json:"projectedWeightKg"`
	PricePerKg         float64   `json:"pricePerKg"`
	PriceSource        string    `json:"priceSource"`
	PhysicalValue      float64   `json:"physicalValue"`
	BreedingAccrual    float64   `json:"breedingAccrual"`
	GrossValue         float64   `json:"grossValue"`
	MortalityDeduction float64   `json:"mortalityDeduction"`
	NetValue           float64   `json:"netValue"`
	CostToCarry        float64   `json:"costToCarry"`
	NetRealizableValue float64   `json:"netRealizableValue"`
	ValuationDate      time.Time `json:"valuationDate"`
}

// CategoryBreakdown aggregates valuation figures for one livestock category.
type CategoryBreakdown struct {
	Category        string  `json:"category"`
	TotalValue      float64 `json:"totalValue"`
	HeadCount       int     `json:"headCount"`
	PhysicalValue   float64 `json:"physicalValue"`
	BreedingAccrual float64 `json:"breedingAccrual"`
}

// SpeciesBreakdown aggregates valuation figures for one species.
type SpeciesBreakdown struct {
	Species    string  `json:"species"`
	TotalValue float64 `json:"totalValue"`
	HeadCount  int     `json:"headCount"`
	HerdCount  int     `json:"herdCount"`
}

// PortfolioSummary is the full aggregate over all active herds. Breakdown
// totals partition the grand totals exactly: the sum over Categories (and
// over Species) of TotalValue equals TotalNetWorth.
type PortfolioSummary struct {
	TotalNetWorth           float64 `json:"totalNetWorth"`
	TotalPhysicalValue      float64 `json:"totalPhysicalValue"`
	TotalBreedingAccrual    float64 `json:"totalBreedingAccrual"`
	TotalGrossValue         float64 `json:"totalGrossValue"`
	TotalMortalityDeduction float64 `json:"totalMortalityDeduction"`
	TotalCostToCarry        float64 `json:"totalCostToCarry"`
	TotalInitialValue       float64 `json:"totalInitialValue"`
	UnrealizedGains         float64 `json:"unrealizedGains"`
	UnrealizedGainsPercent  float64 `json:"unrealizedGainsPercent"`

	TotalHeadCount  int `json:"totalHeadCount"`
	HerdCount       int `json:"herdCount"`
	IndividualCount int `json:"individualCount"`

	Categories []CategoryBreakdown `json:"categories"`
	Species    []SpeciesBreakdown  `json:"species"`

	LargestCategory        string  `json:"largestCategory"`
	LargestCategoryPercent float64 `json:"largestCategoryPercent"`

	// Valuations keyed by herd ID for O(1) detail lookups.
	Valuations map[string]HerdValuation `json:"valuations"`

	ValuationDate time.Time `json:"valuationDate"`
}

// RoughSummary is a fast, clearly-labeled estimate shown while the precise
// aggregation runs. It is a distinct type so callers can never mistake an
// estimate for an authoritative summary.
type RoughSummary struct {
	EstimatedNetWorth float64   `json:"estimatedNetWorth"`
	TotalHeadCount    int       `json:"totalHeadCount"`
	HerdCount         int       `json:"herdCount"`
	AssumedWeightKg   float64   `json:"assumedWeightKg"`
	AssumedPricePerKg float64   `json:"assumedPricePerKg"`
	EstimatedAt       time.Time `json:"estimatedAt"`
}
