package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
)

// storedTime formats an optional time the way the repositories store them.
func storedTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return repository.FormatTime(*t)
}

// HerdBuilder provides a fluent interface for creating test herds.
//
// Example usage:
//
//	// Simple creation with defaults
//	herd := testutil.NewHerd().Build(t, db)
//
//	// Customized herd
//	herd := testutil.NewHerd().
//	    WithSpecies("Sheep", "Trade Lamb").
//	    WithHeadCount(250).
//	    Pregnant(time.Now().AddDate(0, -2, 0), 0.9).
//	    Build(t, db)
type HerdBuilder struct {
	herd model.Herd
}

// NewHerd creates a HerdBuilder with sensible defaults: a hundred-head
// mob of growing steers acquired sixty days ago.
func NewHerd() *HerdBuilder {
	return &HerdBuilder{
		herd: model.Herd{
			ID:              MakeID(),
			Name:            MakeHerdName("Test Mob"),
			Species:         model.SpeciesCattle,
			Breed:           "Angus",
			Category:        "Grown Steer",
			Sex:             "Castrate",
			HeadCount:       100,
			CreatedAt:       time.Now().UTC().AddDate(0, 0, -60),
			InitialWeightKg: 300,
			DailyWeightGain: 0.5,
		},
	}
}

// WithID sets a custom ID.
func (b *HerdBuilder) WithID(id string) *HerdBuilder {
	b.herd.ID = id
	return b
}

// WithName sets a custom name.
func (b *HerdBuilder) WithName(name string) *HerdBuilder {
	b.herd.Name = name
	return b
}

// WithSpecies sets the species and category together, since they must
// agree with the reference lists.
func (b *HerdBuilder) WithSpecies(species, category string) *HerdBuilder {
	b.herd.Species = species
	b.herd.Category = category
	return b
}

// WithHeadCount sets the head count.
func (b *HerdBuilder) WithHeadCount(count int) *HerdBuilder {
	b.herd.HeadCount = count
	return b
}

// Individual marks the record as a single animal.
func (b *HerdBuilder) Individual() *HerdBuilder {
	b.herd.HeadCount = 1
	return b
}

// WithCreatedAt sets the acquisition date.
func (b *HerdBuilder) WithCreatedAt(at time.Time) *HerdBuilder {
	b.herd.CreatedAt = at
	return b
}

// WithWeight sets the initial weight and daily gain.
func (b *HerdBuilder) WithWeight(initialKg, dailyGain float64) *HerdBuilder {
	b.herd.InitialWeightKg = initialKg
	b.herd.DailyWeightGain = dailyGain
	return b
}

// WithRateChange records a growth-rate change: oldRate applied before
// changeDate, the current DailyWeightGain after it.
func (b *HerdBuilder) WithRateChange(oldRate float64, changeDate time.Time) *HerdBuilder {
	b.herd.PreviousDailyWeightGain = &oldRate
	b.herd.DWGChangeDate = &changeDate
	return b
}

// FrozenWeight freezes weight projection at the acquisition date.
func (b *HerdBuilder) FrozenWeight() *HerdBuilder {
	b.herd.UseCreationDateForWeight = true
	return b
}

// Breeder marks the herd as breeding stock.
func (b *HerdBuilder) Breeder() *HerdBuilder {
	b.herd.IsBreeder = true
	return b
}

// Pregnant marks the herd as pregnant breeding stock joined on the
// given date with the given expected calving rate.
func (b *HerdBuilder) Pregnant(joinedDate time.Time, calvingRate float64) *HerdBuilder {
	b.herd.IsBreeder = true
	b.herd.IsPregnant = true
	b.herd.JoinedDate = &joinedDate
	b.herd.CalvingRate = calvingRate
	return b
}

// WithSaleyard sets the preferred saleyard.
func (b *HerdBuilder) WithSaleyard(saleyard string) *HerdBuilder {
	b.herd.PreferredSaleyard = saleyard
	return b
}

// Sold marks the herd as sold.
func (b *HerdBuilder) Sold() *HerdBuilder {
	b.herd.IsSold = true
	return b
}

// Build creates the herd in the database and returns it.
func (b *HerdBuilder) Build(t *testing.T, db *sql.DB) model.Herd {
	t.Helper()

	query := `
		INSERT INTO herd (
			id, name, species, breed, category, sex, head_count, created_at,
			initial_weight_kg, daily_weight_gain, previous_daily_weight_gain,
			dwg_change_date, use_creation_date_for_weight, is_breeder,
			is_pregnant, joined_date, calving_rate, preferred_saleyard, is_sold
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	h := b.herd
	_, err := db.Exec(query,
		h.ID, h.Name, h.Species, h.Breed, h.Category, h.Sex, h.HeadCount,
		repository.FormatTime(h.CreatedAt), h.InitialWeightKg, h.DailyWeightGain,
		h.PreviousDailyWeightGain, storedTime(h.DWGChangeDate), h.UseCreationDateForWeight,
		h.IsBreeder, h.IsPregnant, storedTime(h.JoinedDate), h.CalvingRate,
		h.PreferredSaleyard, h.IsSold,
	)
	if err != nil {
		t.Fatalf("Failed to create test herd: %v", err)
	}

	return h
}

// PriceBuilder provides a fluent interface for creating test market prices.
//
// Example usage:
//
//	price := testutil.NewPrice().
//	    WithCategory("Trade Lamb").
//	    WithPrice(7.80).
//	    WithDate(time.Now().AddDate(0, 0, -1)).
//	    Build(t, db)
type PriceBuilder struct {
	price model.MarketPrice
}

// NewPrice creates a PriceBuilder with sensible defaults.
func NewPrice() *PriceBuilder {
	return &PriceBuilder{
		price: model.MarketPrice{
			ID:         MakeID(),
			Category:   "Grown Steer",
			PricePerKg: 3.45,
			PriceDate:  time.Now().UTC(),
			Source:     "saleyard-report",
			Saleyard:   "Roma Saleyards",
			State:      "QLD",
		},
	}
}

// WithCategory sets the category.
func (b *PriceBuilder) WithCategory(category string) *PriceBuilder {
	b.price.Category = category
	return b
}

// WithPrice sets the price per kilogram.
func (b *PriceBuilder) WithPrice(pricePerKg float64) *PriceBuilder {
	b.price.PricePerKg = pricePerKg
	return b
}

// WithDate sets the price date.
func (b *PriceBuilder) WithDate(date time.Time) *PriceBuilder {
	b.price.PriceDate = date
	return b
}

// WithSource sets the source label.
func (b *PriceBuilder) WithSource(source string) *PriceBuilder {
	b.price.Source = source
	return b
}

// WithSaleyard sets the reporting saleyard and state.
func (b *PriceBuilder) WithSaleyard(saleyard, state string) *PriceBuilder {
	b.price.Saleyard = saleyard
	b.price.State = state
	return b
}

// Build creates the market price in the database and returns it.
func (b *PriceBuilder) Build(t *testing.T, db *sql.DB) model.MarketPrice {
	t.Helper()

	query := `
		INSERT INTO market_price (id, category, price_per_kg, price_date, source, saleyard, state)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	p := b.price
	_, err := db.Exec(query, p.ID, p.Category, p.PricePerKg, repository.FormatTime(p.PriceDate), p.Source, p.Saleyard, p.State)
	if err != nil {
		t.Fatalf("Failed to create test market price: %v", err)
	}

	return p
}

// Convenience functions

// CreateHerd creates a herd with the given name and default values.
func CreateHerd(t *testing.T, db *sql.DB, name string) model.Herd {
	t.Helper()
	return NewHerd().WithName(name).Build(t, db)
}

// CreatePrice creates a market price for the given category.
func CreatePrice(t *testing.T, db *sql.DB, category string, pricePerKg float64) model.MarketPrice {
	t.Helper()
	return NewPrice().WithCategory(category).WithPrice(pricePerKg).Build(t, db)
}
