package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/marketfeed"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/valuation"
)

func NewTestHerdService(t *testing.T, db *sql.DB) *service.HerdService {
	t.Helper()

	herdRepo := repository.NewHerdRepository(db)

	return service.NewHerdService(herdRepo, nil)
}

func NewTestPriceService(t *testing.T, db *sql.DB) *service.PriceService {
	t.Helper()

	priceRepo := repository.NewPriceRepository(db)

	return service.NewPriceService(priceRepo, nil, nil)
}

// NewTestPriceServiceWithFeed creates a PriceService backed by a feed
// client, typically a *MockFeedClient, for testing refresh operations
// without real network calls.
func NewTestPriceServiceWithFeed(t *testing.T, db *sql.DB, feed marketfeed.Client) *service.PriceService {
	t.Helper()

	priceRepo := repository.NewPriceRepository(db)

	return service.NewPriceService(priceRepo, feed, nil)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	herdRepo := repository.NewHerdRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	engine := valuation.NewEngine(valuation.DefaultAssumptions())

	return service.NewPortfolioService(herdRepo, priceRepo, snapshotRepo, engine, nil)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)

	return service.NewSnapshotService(NewTestPortfolioService(t, db), snapshotRepo, nil)
}

// MakeID generates a unique UUID for test records.
func MakeID() string {
	return uuid.NewString()
}

// MakeHerdName generates a unique herd name for testing.
//
// Example usage:
//
//	name := testutil.MakeHerdName("Spring Weaners")
//	// Returns: "Spring Weaners ABC123"
func MakeHerdName(base string) string {
	if base == "" {
		base = "Herd"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Common test constants

var (
	// CommonSaleyards contains frequently quoted saleyards.
	CommonSaleyards = []string{"Roma Saleyards", "Wagga Wagga", "Dubbo", "Forbes", "Mount Gambier"}

	// CommonStates contains the states the saleyard reports cover.
	CommonStates = []string{"NSW", "VIC", "QLD", "SA", "WA"}
)

// RandomSaleyard returns a random saleyard from CommonSaleyards.
func RandomSaleyard() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonSaleyards[rand.Intn(len(CommonSaleyards))]
}

// RandomState returns a random state from CommonStates.
func RandomState() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonStates[rand.Intn(len(CommonStates))]
}
