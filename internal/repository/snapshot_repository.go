package repository

import (
	"database/sql"
	"fmt"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot
// table. Snapshots are replaced wholesale inside a transaction so readers
// observe either the previous snapshot or the new one, never a partial state.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetLatestSnapshot retrieves the most recently calculated portfolio snapshot.
func (r *SnapshotRepository) GetLatestSnapshot() (model.PortfolioSnapshot, error) {
	query := `
		SELECT id, total_net_worth, total_physical_value, total_head_count, herd_count, calculated_at
		FROM portfolio_snapshot
		ORDER BY calculated_at DESC
		LIMIT 1
	`

	var s model.PortfolioSnapshot
	var calculatedAtStr string
	err := r.db.QueryRow(query).Scan(
		&s.ID, &s.TotalNetWorth, &s.TotalPhysicalValue, &s.TotalHeadCount, &s.HerdCount, &calculatedAtStr,
	)
	if err == sql.ErrNoRows {
		return model.PortfolioSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.PortfolioSnapshot{}, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}

	s.CalculatedAt, err = ParseTime(calculatedAtStr)
	if err != nil {
		return model.PortfolioSnapshot{}, err
	}
	return s, nil
}

// ReplaceSnapshot atomically replaces the stored snapshot with a new one.
func (r *SnapshotRepository) ReplaceSnapshot(s model.PortfolioSnapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM portfolio_snapshot`); err != nil {
		return fmt.Errorf("failed to clear portfolio_snapshot table: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO portfolio_snapshot (id, total_net_worth, total_physical_value, total_head_count, herd_count, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.ID, s.TotalNetWorth, s.TotalPhysicalValue, s.TotalHeadCount, s.HerdCount, FormatTime(s.CalculatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert portfolio_snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}
