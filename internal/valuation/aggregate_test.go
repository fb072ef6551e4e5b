package valuation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// randomHerds generates a deterministic mixed set of herds, individuals,
// breeders, and sold records for the aggregation property tests.
func randomHerds(rng *rand.Rand, n int, today time.Time) []model.Herd {
	species := []string{model.SpeciesCattle, model.SpeciesSheep, model.SpeciesPigs, model.SpeciesGoats}

	herds := make([]model.Herd, n)
	for i := range herds {
		sp := species[rng.Intn(len(species))]
		categories := model.CategoriesBySpecies[sp]

		h := model.Herd{
			ID:              fmt.Sprintf("herd-%03d", i),
			Species:         sp,
			Category:        categories[rng.Intn(len(categories))],
			HeadCount:       1 + rng.Intn(400),
			CreatedAt:       today.AddDate(0, 0, -rng.Intn(700)),
			InitialWeightKg: 20 + rng.Float64()*500,
			DailyWeightGain: rng.Float64() * 1.5,
			IsSold:          rng.Intn(5) == 0,
		}
		if rng.Intn(3) == 0 {
			h.IsBreeder = true
			h.IsPregnant = true
			joined := today.AddDate(0, 0, -rng.Intn(300))
			h.JoinedDate = &joined
			h.CalvingRate = rng.Float64()
		}
		herds[i] = h
	}
	return herds
}

func testPrices(today time.Time) []model.MarketPrice {
	return []model.MarketPrice{
		{Category: "Grown Steer", PricePerKg: 3.45, PriceDate: today.AddDate(0, 0, -1), Source: "NLRS"},
		{Category: "Breeding Cow", PricePerKg: 3.80, PriceDate: today.AddDate(0, 0, -2), Source: "NLRS"},
		{Category: "Feeder Lamb", PricePerKg: 9.10, PriceDate: today.AddDate(0, 0, -1), Source: "NLRS"},
		{Category: "Grower Pig", PricePerKg: 2.15, PriceDate: today.AddDate(0, 0, -3), Source: "NLRS"},
	}
}

// TestAggregate tests the portfolio aggregator.
//
// WHY: The summary is the single figure users act on. Totals that drift
// from the per-herd valuations they claim to roll up, or sold herds leaking
// into the aggregate, are silent data corruption.
func TestAggregate(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	today := date(2026, 8, 1)

	t.Run("empty herd list yields nil summary and no error", func(t *testing.T) {
		summary, err := engine.Aggregate(context.Background(), nil, NewPriceTable(nil, 4.00), today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}
		if summary != nil {
			t.Errorf("Expected nil summary for empty herd list, got %+v", summary)
		}
	})

	t.Run("all-sold herd list yields nil summary", func(t *testing.T) {
		herds := []model.Herd{
			{ID: "h1", Species: model.SpeciesCattle, Category: "Grown Steer", HeadCount: 10,
				CreatedAt: today.AddDate(0, 0, -30), InitialWeightKg: 300, IsSold: true},
		}
		summary, err := engine.Aggregate(context.Background(), herds, NewPriceTable(nil, 4.00), today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}
		if summary != nil {
			t.Errorf("Expected nil summary when every herd is sold, got %+v", summary)
		}
	})

	t.Run("totals equal the sum of per-herd valuations", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		herds := randomHerds(rng, 60, today)
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}
		if summary == nil {
			t.Fatal("Expected a summary, got nil")
		}

		var wantNetWorth, wantPhysical, wantAccrual float64
		for _, v := range summary.Valuations {
			wantNetWorth += v.NetRealizableValue
			wantPhysical += v.PhysicalValue
			wantAccrual += v.BreedingAccrual
		}

		if math.Abs(summary.TotalNetWorth-wantNetWorth) > 1e-6 {
			t.Errorf("TotalNetWorth %v != sum of NRVs %v", summary.TotalNetWorth, wantNetWorth)
		}
		if math.Abs(summary.TotalPhysicalValue-wantPhysical) > 1e-6 {
			t.Errorf("TotalPhysicalValue %v != sum %v", summary.TotalPhysicalValue, wantPhysical)
		}
		if math.Abs(summary.TotalBreedingAccrual-wantAccrual) > 1e-6 {
			t.Errorf("TotalBreedingAccrual %v != sum %v", summary.TotalBreedingAccrual, wantAccrual)
		}
	})

	t.Run("sold herds never contribute to any aggregate", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		herds := randomHerds(rng, 40, today)
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		var activeCount, activeHead int
		for _, h := range herds {
			if h.IsSold {
				if _, ok := summary.Valuations[h.ID]; ok {
					t.Errorf("Sold herd %s present in valuation map", h.ID)
				}
				continue
			}
			activeCount++
			activeHead += h.HeadCount
		}

		if len(summary.Valuations) != activeCount {
			t.Errorf("Expected %d valuations, got %d", activeCount, len(summary.Valuations))
		}
		if summary.TotalHeadCount != activeHead {
			t.Errorf("Expected head count %d, got %d", activeHead, summary.TotalHeadCount)
		}
	})

	t.Run("breakdowns partition the grand totals", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		herds := randomHerds(rng, 80, today)
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		var catValue, spValue float64
		var catHead, spHead, spHerds int
		for _, c := range summary.Categories {
			catValue += c.TotalValue
			catHead += c.HeadCount
		}
		for _, s := range summary.Species {
			spValue += s.TotalValue
			spHead += s.HeadCount
			spHerds += s.HerdCount
		}

		if math.Abs(catValue-summary.TotalNetWorth) > 1e-6 {
			t.Errorf("Category values sum to %v, want %v", catValue, summary.TotalNetWorth)
		}
		if math.Abs(spValue-summary.TotalNetWorth) > 1e-6 {
			t.Errorf("Species values sum to %v, want %v", spValue, summary.TotalNetWorth)
		}
		if catHead != summary.TotalHeadCount || spHead != summary.TotalHeadCount {
			t.Errorf("Breakdown head counts %d/%d, want %d", catHead, spHead, summary.TotalHeadCount)
		}
		if spHerds != summary.HerdCount+summary.IndividualCount {
			t.Errorf("Species herd counts sum to %d, want %d", spHerds, summary.HerdCount+summary.IndividualCount)
		}
	})

	t.Run("largest category leads the breakdown", func(t *testing.T) {
		herds := []model.Herd{
			{ID: "big", Species: model.SpeciesCattle, Category: "Grown Steer", HeadCount: 200,
				CreatedAt: today.AddDate(0, 0, -30), InitialWeightKg: 400},
			{ID: "small", Species: model.SpeciesSheep, Category: "Feeder Lamb", HeadCount: 20,
				CreatedAt: today.AddDate(0, 0, -30), InitialWeightKg: 40},
		}
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		if summary.LargestCategory != "Grown Steer" {
			t.Errorf("Expected largest category 'Grown Steer', got %q", summary.LargestCategory)
		}
		if summary.LargestCategoryPercent <= 0 || summary.LargestCategoryPercent > 100 {
			t.Errorf("Largest category percent out of range: %v", summary.LargestCategoryPercent)
		}
		if summary.Categories[0].Category != summary.LargestCategory {
			t.Errorf("Breakdown not sorted by value: first is %q", summary.Categories[0].Category)
		}
	})

	t.Run("zero initial value guards the gains percentage", func(t *testing.T) {
		herds := []model.Herd{
			{ID: "h1", Species: model.SpeciesCattle, Category: "Calves", HeadCount: 5,
				CreatedAt: today.AddDate(0, 0, -10), InitialWeightKg: 0, DailyWeightGain: 1.0},
		}
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		if summary.TotalInitialValue != 0 {
			t.Fatalf("Expected zero initial value, got %v", summary.TotalInitialValue)
		}
		if summary.UnrealizedGainsPercent != 0 {
			t.Errorf("Expected 0%% gains on zero baseline, got %v", summary.UnrealizedGainsPercent)
		}
		if math.IsNaN(summary.UnrealizedGainsPercent) || math.IsInf(summary.UnrealizedGainsPercent, 0) {
			t.Error("Gains percent must never be NaN or Inf")
		}
	})

	t.Run("unrealized gains derive from the initial-value baseline", func(t *testing.T) {
		herds := []model.Herd{steerHerd(today)}
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		// Baseline: 100 head x 300kg x $3.45.
		wantInitial := 100 * 300 * 3.45
		if math.Abs(summary.TotalInitialValue-wantInitial) > 1e-6 {
			t.Errorf("Expected initial value %v, got %v", wantInitial, summary.TotalInitialValue)
		}
		wantGains := summary.TotalNetWorth - wantInitial
		if math.Abs(summary.UnrealizedGains-wantGains) > 1e-6 {
			t.Errorf("Expected gains %v, got %v", wantGains, summary.UnrealizedGains)
		}
	})

	t.Run("cancelled context abandons the pass", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		herds := randomHerds(rng, 50, today)
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := engine.Aggregate(ctx, herds, prices, today)
		if err == nil {
			t.Fatal("Expected context error, got nil")
		}
		if summary != nil {
			t.Errorf("Expected nil summary on cancellation, got %+v", summary)
		}
	})

	t.Run("individuals are counted separately but valued in totals", func(t *testing.T) {
		herds := []model.Herd{
			{ID: "mob", Species: model.SpeciesCattle, Category: "Grown Steer", HeadCount: 50,
				CreatedAt: today.AddDate(0, 0, -30), InitialWeightKg: 350},
			{ID: "bull", Species: model.SpeciesCattle, Category: "Grown Bull", HeadCount: 1,
				CreatedAt: today.AddDate(0, 0, -30), InitialWeightKg: 800},
		}
		prices := NewPriceTable(testPrices(today), DefaultFallbackPricePerKg)

		summary, err := engine.Aggregate(context.Background(), herds, prices, today)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		if summary.HerdCount != 1 || summary.IndividualCount != 1 {
			t.Errorf("Expected 1 herd + 1 individual, got %d/%d", summary.HerdCount, summary.IndividualCount)
		}
		if _, ok := summary.Valuations["bull"]; !ok {
			t.Error("Individual animal missing from valuation map")
		}
		if summary.TotalHeadCount != 51 {
			t.Errorf("Expected total head 51, got %d", summary.TotalHeadCount)
		}
	})
}

// TestQuickEstimate tests the rough-summary fast path.
//
// WHY: The estimate is shown before the precise pass completes. It must be
// derived from flat assumptions only and must mirror Aggregate's nil
// convention so callers handle "no data" uniformly.
func TestQuickEstimate(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	now := date(2026, 8, 1)

	t.Run("no active herds yields nil", func(t *testing.T) {
		if got := engine.QuickEstimate(nil, now); got != nil {
			t.Errorf("Expected nil estimate, got %+v", got)
		}
		sold := []model.Herd{{ID: "s", HeadCount: 10, IsSold: true}}
		if got := engine.QuickEstimate(sold, now); got != nil {
			t.Errorf("Expected nil estimate for sold-only list, got %+v", got)
		}
	})

	t.Run("estimate is head count times flat assumptions", func(t *testing.T) {
		herds := []model.Herd{
			{ID: "a", HeadCount: 100},
			{ID: "b", HeadCount: 50},
			{ID: "c", HeadCount: 25, IsSold: true},
		}

		est := engine.QuickEstimate(herds, now)
		if est == nil {
			t.Fatal("Expected an estimate, got nil")
		}

		want := 150 * DefaultAssumedWeightKg * DefaultAssumedPricePerKg
		if math.Abs(est.EstimatedNetWorth-want) > 1e-6 {
			t.Errorf("Expected estimate %v, got %v", want, est.EstimatedNetWorth)
		}
		if est.TotalHeadCount != 150 || est.HerdCount != 2 {
			t.Errorf("Expected 150 head over 2 herds, got %d/%d", est.TotalHeadCount, est.HerdCount)
		}
	})
}
