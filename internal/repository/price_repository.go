package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// PriceRepository provides data access methods for the market_price table.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetLatestPrices retrieves the most recent price per category in a single
// query. This is the one fetch an aggregation pass performs; per-herd
// resolution then happens in memory against the grouped result.
func (r *PriceRepository) GetLatestPrices() ([]model.MarketPrice, error) {
	query := `
		SELECT mp.id, mp.category, mp.price_per_kg, mp.price_date, mp.source, mp.saleyard, mp.state
		FROM market_price mp
		JOIN (
			SELECT category, MAX(price_date) AS max_date
			FROM market_price
			GROUP BY category
		) latest ON latest.category = mp.category AND latest.max_date = mp.price_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query market_price table: %w", err)
	}
	defer rows.Close()

	return scanPrices(rows)
}

// GetPricesOnCategory retrieves all prices for a category within a date range,
// ordered oldest first.
func (r *PriceRepository) GetPricesOnCategory(category string, from, to time.Time) ([]model.MarketPrice, error) {
	query := `
		SELECT id, category, price_per_kg, price_date, source, saleyard, state
		FROM market_price
		WHERE category = ? AND price_date >= ? AND price_date <= ?
		ORDER BY price_date
	`

	rows, err := r.db.Query(query, category, FormatTime(from), FormatTime(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query market_price table: %w", err)
	}
	defer rows.Close()

	return scanPrices(rows)
}

// InsertPrices stores a batch of price records in a single transaction.
func (r *PriceRepository) InsertPrices(prices []model.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price insert transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare(`
		INSERT INTO market_price (id, category, price_per_kg, price_date, source, saleyard, state)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare price insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range prices {
		if _, err := stmt.Exec(p.ID, p.Category, p.PricePerKg, FormatTime(p.PriceDate), p.Source, p.Saleyard, p.State); err != nil {
			return fmt.Errorf("failed to insert price for %s: %w", p.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price insert: %w", err)
	}

	return nil
}

func scanPrices(rows *sql.Rows) ([]model.MarketPrice, error) {
	prices := []model.MarketPrice{}
	for rows.Next() {
		var p model.MarketPrice
		var saleyard, state sql.NullString
		var priceDateStr string

		err := rows.Scan(&p.ID, &p.Category, &p.PricePerKg, &priceDateStr, &p.Source, &saleyard, &state)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market_price table results: %w", err)
		}

		p.PriceDate, err = ParseTime(priceDateStr)
		if err != nil {
			return nil, err
		}
		p.Saleyard = saleyard.String
		p.State = state.String
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market_price table: %w", err)
	}

	return prices, nil
}
