package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/testutil"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/validation"
)

// TestHerdService_GetAllHerds tests the GetAllHerds method.
//
// WHY: Herd retrieval feeds every valuation pass. This ensures the sold
// filter works and an empty database behaves sensibly.
func TestHerdService_GetAllHerds(t *testing.T) {
	t.Run("returns empty slice when no herds exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herds, err := svc.GetAllHerds(false)
		if err != nil {
			t.Fatalf("GetAllHerds() returned unexpected error: %v", err)
		}
		if len(herds) != 0 {
			t.Errorf("Expected empty slice, got %d herds", len(herds))
		}
	})

	t.Run("excludes sold herds by default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		active := testutil.NewHerd().WithName("Active Mob").Build(t, db)
		testutil.NewHerd().WithName("Sold Mob").Sold().Build(t, db)

		herds, err := svc.GetAllHerds(false)
		if err != nil {
			t.Fatalf("GetAllHerds() returned unexpected error: %v", err)
		}
		if len(herds) != 1 {
			t.Fatalf("Expected 1 herd, got %d", len(herds))
		}
		if herds[0].ID != active.ID {
			t.Errorf("Expected active herd %s, got %s", active.ID, herds[0].ID)
		}
	})

	t.Run("includes sold herds when requested", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		testutil.NewHerd().Build(t, db)
		testutil.NewHerd().Sold().Build(t, db)

		herds, err := svc.GetAllHerds(true)
		if err != nil {
			t.Fatalf("GetAllHerds() returned unexpected error: %v", err)
		}
		if len(herds) != 2 {
			t.Errorf("Expected 2 herds, got %d", len(herds))
		}
	})
}

// TestHerdService_CreateHerd tests herd creation.
//
// WHY: Creation is where the closed reference lists and breeding rules are
// enforced. Bad records created here would poison every later valuation.
func TestHerdService_CreateHerd(t *testing.T) {
	t.Run("creates herd with valid data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Spring Weaners",
			Species:         model.SpeciesCattle,
			Category:        "Weaner Steer",
			Sex:             "Castrate",
			HeadCount:       80,
			CreatedAt:       "2026-03-15",
			InitialWeightKg: 220,
			DailyWeightGain: 0.7,
		})
		if err != nil {
			t.Fatalf("CreateHerd() returned unexpected error: %v", err)
		}
		if herd.ID == "" {
			t.Error("Expected generated ID, got empty string")
		}
		if !herd.CreatedAt.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected createdAt 2026-03-15, got %v", herd.CreatedAt)
		}

		stored, err := svc.GetHerd(herd.ID)
		if err != nil {
			t.Fatalf("GetHerd() returned unexpected error: %v", err)
		}
		if stored.Name != "Spring Weaners" || stored.HeadCount != 80 {
			t.Errorf("Stored herd does not match request: %+v", stored)
		}
	})

	t.Run("defaults acquisition date to now when absent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		before := time.Now().UTC().Add(-time.Minute)
		herd, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Today Mob",
			Species:         model.SpeciesSheep,
			Category:        "Trade Lamb",
			Sex:             "Mixed",
			HeadCount:       300,
			InitialWeightKg: 35,
			DailyWeightGain: 0.2,
		})
		if err != nil {
			t.Fatalf("CreateHerd() returned unexpected error: %v", err)
		}
		if herd.CreatedAt.Before(before) {
			t.Errorf("Expected createdAt near now, got %v", herd.CreatedAt)
		}
	})

	t.Run("stores breeding fields for a pregnant herd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		joined := "2026-06-01"
		rate := 0.85
		herd, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Breeding Cows",
			Species:         model.SpeciesCattle,
			Category:        "Breeding Cow",
			Sex:             "Female",
			HeadCount:       50,
			InitialWeightKg: 500,
			DailyWeightGain: 0,
			IsBreeder:       true,
			IsPregnant:      true,
			JoinedDate:      &joined,
			CalvingRate:     &rate,
		})
		if err != nil {
			t.Fatalf("CreateHerd() returned unexpected error: %v", err)
		}
		if herd.JoinedDate == nil || !herd.JoinedDate.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected joined date 2026-06-01, got %v", herd.JoinedDate)
		}
		if herd.CalvingRate != 0.85 {
			t.Errorf("Expected calving rate 0.85, got %v", herd.CalvingRate)
		}
	})

	t.Run("rejects unknown species", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		_, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Alpacas",
			Species:         "Alpacas",
			Category:        "Grown Steer",
			HeadCount:       10,
			InitialWeightKg: 60,
		})
		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := verr.Fields["species"]; !ok {
			t.Errorf("Expected species field error, got %v", verr.Fields)
		}
	})

	t.Run("rejects category from another species", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		_, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Mislabeled",
			Species:         model.SpeciesSheep,
			Category:        "Grown Steer",
			Sex:             "Mixed",
			HeadCount:       10,
			InitialWeightKg: 40,
		})
		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := verr.Fields["category"]; !ok {
			t.Errorf("Expected category field error, got %v", verr.Fields)
		}
	})

	t.Run("rejects pregnant herd without joined date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		_, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Unjoined",
			Species:         model.SpeciesCattle,
			Category:        "Breeding Cow",
			Sex:             "Female",
			HeadCount:       20,
			InitialWeightKg: 480,
			IsBreeder:       true,
			IsPregnant:      true,
		})
		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects zero head count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		_, err := svc.CreateHerd(request.CreateHerdRequest{
			Name:            "Ghost Mob",
			Species:         model.SpeciesCattle,
			Category:        "Grown Steer",
			Sex:             "Castrate",
			HeadCount:       0,
			InitialWeightKg: 300,
		})
		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})
}

// TestHerdService_UpdateHerd tests partial updates.
//
// WHY: Editing the daily weight gain must preserve projection continuity by
// recording the previous rate and when it changed. Losing that history would
// silently re-project the whole ownership period at the new rate.
func TestHerdService_UpdateHerd(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd := testutil.NewHerd().WithName("Original").WithHeadCount(100).Build(t, db)

		newName := "Renamed"
		updated, err := svc.UpdateHerd(herd.ID, request.UpdateHerdRequest{Name: &newName})
		if err != nil {
			t.Fatalf("UpdateHerd() returned unexpected error: %v", err)
		}
		if updated.Name != "Renamed" {
			t.Errorf("Expected name Renamed, got %s", updated.Name)
		}
		if updated.HeadCount != 100 {
			t.Errorf("Head count changed unexpectedly: %d", updated.HeadCount)
		}
	})

	t.Run("records previous rate when daily weight gain changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd := testutil.NewHerd().WithWeight(300, 0.5).Build(t, db)

		newRate := 0.8
		updated, err := svc.UpdateHerd(herd.ID, request.UpdateHerdRequest{DailyWeightGain: &newRate})
		if err != nil {
			t.Fatalf("UpdateHerd() returned unexpected error: %v", err)
		}
		if updated.DailyWeightGain != 0.8 {
			t.Errorf("Expected new rate 0.8, got %v", updated.DailyWeightGain)
		}
		if updated.PreviousDailyWeightGain == nil || *updated.PreviousDailyWeightGain != 0.5 {
			t.Errorf("Expected previous rate 0.5 recorded, got %v", updated.PreviousDailyWeightGain)
		}
		if updated.DWGChangeDate == nil {
			t.Error("Expected change date recorded, got nil")
		}
	})

	t.Run("does not record rate change when value is unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd := testutil.NewHerd().WithWeight(300, 0.5).Build(t, db)

		sameRate := 0.5
		updated, err := svc.UpdateHerd(herd.ID, request.UpdateHerdRequest{DailyWeightGain: &sameRate})
		if err != nil {
			t.Fatalf("UpdateHerd() returned unexpected error: %v", err)
		}
		if updated.PreviousDailyWeightGain != nil {
			t.Errorf("Expected no rate-change record, got %v", *updated.PreviousDailyWeightGain)
		}
	})

	t.Run("returns not found for unknown herd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		name := "Nobody"
		_, err := svc.UpdateHerd(testutil.MakeID(), request.UpdateHerdRequest{Name: &name})
		if !errors.Is(err, apperrors.ErrHerdNotFound) {
			t.Errorf("Expected ErrHerdNotFound, got %v", err)
		}
	})
}

// TestHerdService_SellHerd tests the sale operation.
//
// WHY: Sale is a soft removal. Selling twice must fail loudly so a double
// sale in the UI cannot hide a bookkeeping mistake.
func TestHerdService_SellHerd(t *testing.T) {
	t.Run("marks herd as sold", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd := testutil.NewHerd().Build(t, db)

		if err := svc.SellHerd(herd.ID); err != nil {
			t.Fatalf("SellHerd() returned unexpected error: %v", err)
		}

		stored, err := svc.GetHerd(herd.ID)
		if err != nil {
			t.Fatalf("GetHerd() returned unexpected error: %v", err)
		}
		if !stored.IsSold {
			t.Error("Expected herd marked sold")
		}
	})

	t.Run("rejects selling an already-sold herd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		herd := testutil.NewHerd().Sold().Build(t, db)

		err := svc.SellHerd(herd.ID)
		if !errors.Is(err, apperrors.ErrHerdAlreadySold) {
			t.Errorf("Expected ErrHerdAlreadySold, got %v", err)
		}
	})

	t.Run("returns not found for unknown herd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHerdService(t, db)

		err := svc.SellHerd(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrHerdNotFound) {
			t.Errorf("Expected ErrHerdNotFound, got %v", err)
		}
	})
}
