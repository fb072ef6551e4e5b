package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/testutil"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/valuation"
)

// TestPortfolioService_GetPortfolioSummary tests the full valuation pass.
//
// WHY: The summary is the product's headline number. It must combine the
// stored herds with the latest price table, honor the fallback price, and
// report nothing rather than zeros for an empty book.
func TestPortfolioService_GetPortfolioSummary(t *testing.T) {
	t.Run("returns nil summary when no herds exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		summary, err := svc.GetPortfolioSummary(context.Background())
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if summary != nil {
			t.Errorf("Expected nil summary, got %+v", summary)
		}
	})

	t.Run("returns nil summary when all herds are sold", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		testutil.NewHerd().Sold().Build(t, db)

		summary, err := svc.GetPortfolioSummary(context.Background())
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if summary != nil {
			t.Errorf("Expected nil summary, got %+v", summary)
		}
	})

	t.Run("values herds against the latest market prices", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		today := time.Now().UTC()
		// 100 head, frozen at 300kg, priced at 3.45
		herd := testutil.NewHerd().
			WithWeight(300, 0.5).
			WithCreatedAt(today.AddDate(0, 0, -60)).
			FrozenWeight().
			Build(t, db)
		testutil.CreatePrice(t, db, "Grown Steer", 3.45)

		summary, err := svc.GetPortfolioSummary(context.Background())
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if summary == nil {
			t.Fatal("Expected summary, got nil")
		}

		v, ok := summary.Valuations[herd.ID]
		if !ok {
			t.Fatalf("Expected valuation for herd %s", herd.ID)
		}
		if v.PricePerKg != 3.45 {
			t.Errorf("Expected price 3.45, got %v", v.PricePerKg)
		}
		// 100 * 300 * 3.45
		if v.PhysicalValue != 103500 {
			t.Errorf("Expected physical value 103500, got %v", v.PhysicalValue)
		}
		if summary.TotalHeadCount != 100 {
			t.Errorf("Expected 100 head, got %d", summary.TotalHeadCount)
		}
	})

	t.Run("uses the fallback price when a category has no quote", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		herd := testutil.NewHerd().Build(t, db)

		summary, err := svc.GetPortfolioSummary(context.Background())
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if summary == nil {
			t.Fatal("Expected summary, got nil")
		}

		v := summary.Valuations[herd.ID]
		if v.PricePerKg != valuation.DefaultFallbackPricePerKg {
			t.Errorf("Expected fallback price %v, got %v", valuation.DefaultFallbackPricePerKg, v.PricePerKg)
		}
		if v.PriceSource != valuation.PriceSourceFallback {
			t.Errorf("Expected fallback price source, got %q", v.PriceSource)
		}
	})

	t.Run("totals are finite and invariants hold across herds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		today := time.Now().UTC()
		testutil.NewHerd().WithSpecies(model.SpeciesCattle, "Grown Steer").WithHeadCount(120).Build(t, db)
		testutil.NewHerd().
			WithSpecies(model.SpeciesSheep, "Breeding Ewe").
			WithHeadCount(400).
			WithWeight(55, 0.05).
			Pregnant(today.AddDate(0, 0, -40), 0.9).
			Build(t, db)
		testutil.CreatePrice(t, db, "Grown Steer", 3.45)
		testutil.CreatePrice(t, db, "Breeding Ewe", 6.10)

		summary, err := svc.GetPortfolioSummary(context.Background())
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if summary == nil {
			t.Fatal("Expected summary, got nil")
		}

		for id, v := range summary.Valuations {
			if math.IsNaN(v.NetRealizableValue) || math.IsInf(v.NetRealizableValue, 0) {
				t.Errorf("Herd %s has non-finite NRV: %v", id, v.NetRealizableValue)
			}
			if v.GrossValue != v.PhysicalValue+v.BreedingAccrual {
				t.Errorf("Herd %s gross invariant broken: %v != %v + %v", id, v.GrossValue, v.PhysicalValue, v.BreedingAccrual)
			}
		}
		if summary.HerdCount != 2 {
			t.Errorf("Expected 2 herds, got %d", summary.HerdCount)
		}
		if summary.TotalHeadCount != 520 {
			t.Errorf("Expected 520 head, got %d", summary.TotalHeadCount)
		}
	})
}

// TestPortfolioService_GetHerdValuation tests the single-herd detail path.
func TestPortfolioService_GetHerdValuation(t *testing.T) {
	t.Run("values a single herd with its category price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		herd := testutil.NewHerd().FrozenWeight().Build(t, db)
		testutil.CreatePrice(t, db, "Grown Steer", 3.60)

		v, err := svc.GetHerdValuation(herd.ID)
		if err != nil {
			t.Fatalf("GetHerdValuation() returned unexpected error: %v", err)
		}
		if v.HerdID != herd.ID {
			t.Errorf("Expected herd ID %s, got %s", herd.ID, v.HerdID)
		}
		if v.PricePerKg != 3.60 {
			t.Errorf("Expected price 3.60, got %v", v.PricePerKg)
		}
		// 100 * 300 * 3.60
		if v.PhysicalValue != 108000 {
			t.Errorf("Expected physical value 108000, got %v", v.PhysicalValue)
		}
	})

	t.Run("returns not found for unknown herd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		_, err := svc.GetHerdValuation(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrHerdNotFound) {
			t.Errorf("Expected ErrHerdNotFound, got %v", err)
		}
	})
}

// TestPortfolioService_GetOverview tests the fast two-phase overview.
//
// WHY: The overview must never run a full valuation pass. With a stored
// snapshot it serves that; without one it estimates from flat assumptions
// so first-run users still see a figure.
func TestPortfolioService_GetOverview(t *testing.T) {
	t.Run("returns empty overview when there is no data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		overview, err := svc.GetOverview()
		if err != nil {
			t.Fatalf("GetOverview() returned unexpected error: %v", err)
		}
		if overview.Snapshot != nil || overview.Estimate != nil {
			t.Errorf("Expected empty overview, got %+v", overview)
		}
	})

	t.Run("estimates from assumptions when no snapshot exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		testutil.NewHerd().WithHeadCount(150).Build(t, db)

		overview, err := svc.GetOverview()
		if err != nil {
			t.Fatalf("GetOverview() returned unexpected error: %v", err)
		}
		if overview.Snapshot != nil {
			t.Errorf("Expected no snapshot, got %+v", overview.Snapshot)
		}
		if overview.Estimate == nil {
			t.Fatal("Expected estimate, got nil")
		}
		// 150 head * 400kg assumed * 3.30 assumed
		expected := 150 * valuation.DefaultAssumedWeightKg * valuation.DefaultAssumedPricePerKg
		if overview.Estimate.EstimatedNetWorth != expected {
			t.Errorf("Expected estimate %v, got %v", expected, overview.Estimate.EstimatedNetWorth)
		}
	})

	t.Run("serves the stored snapshot when one exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		snapshotSvc := testutil.NewTestSnapshotService(t, db)

		testutil.NewHerd().FrozenWeight().Build(t, db)
		testutil.CreatePrice(t, db, "Grown Steer", 3.45)

		refreshed, err := snapshotSvc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}
		if !refreshed {
			t.Fatal("Expected snapshot refresh to run")
		}

		overview, err := svc.GetOverview()
		if err != nil {
			t.Fatalf("GetOverview() returned unexpected error: %v", err)
		}
		if overview.Snapshot == nil {
			t.Fatal("Expected snapshot, got nil")
		}
		if overview.Estimate != nil {
			t.Error("Expected no estimate when snapshot exists")
		}
		if overview.Snapshot.TotalHeadCount != 100 {
			t.Errorf("Expected 100 head in snapshot, got %d", overview.Snapshot.TotalHeadCount)
		}
	})
}
