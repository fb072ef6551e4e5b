package valuation

import (
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// PriceSourceFallback marks a valuation priced with the configured fallback
// rather than an actual market quote.
const PriceSourceFallback = "default"

// resolvedPrice is one category's authoritative quote.
type resolvedPrice struct {
	pricePerKg float64
	source     string
}

// PriceTable is a category-keyed lookup of the most recent market price.
// It is built once per aggregation pass so that per-herd resolution is O(1)
// instead of re-scanning (or re-querying) the price list for every herd.
type PriceTable struct {
	byCategory map[string]resolvedPrice
	fallback   float64
}

// NewPriceTable groups the given price records by category, keeping only the
// most recent quote per category. Categories with no quote resolve to
// fallbackPricePerKg with source PriceSourceFallback.
func NewPriceTable(prices []model.MarketPrice, fallbackPricePerKg float64) *PriceTable {
	latest := make(map[string]model.MarketPrice, len(prices))
	for _, p := range prices {
		current, ok := latest[p.Category]
		if !ok || p.PriceDate.After(current.PriceDate) {
			latest[p.Category] = p
		}
	}

	byCategory := make(map[string]resolvedPrice, len(latest))
	for category, p := range latest {
		byCategory[category] = resolvedPrice{pricePerKg: p.PricePerKg, source: p.Source}
	}

	return &PriceTable{byCategory: byCategory, fallback: fallbackPricePerKg}
}

// Resolve returns the price per kilogram and its source label for a category.
func (t *PriceTable) Resolve(category string) (float64, string) {
	if p, ok := t.byCategory[category]; ok {
		return p.pricePerKg, p.source
	}
	return t.fallback, PriceSourceFallback
}

// Categories returns the number of categories with an actual quote.
func (t *PriceTable) Categories() int {
	return len(t.byCategory)
}
