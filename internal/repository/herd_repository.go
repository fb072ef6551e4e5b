package repository

import (
	"database/sql"
	"fmt"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

const herdColumns = `
	id, name, species, breed, category, sex, head_count, created_at,
	initial_weight_kg, daily_weight_gain, previous_daily_weight_gain, dwg_change_date,
	use_creation_date_for_weight, is_breeder, is_pregnant, joined_date, calving_rate,
	preferred_saleyard, is_sold
`

// HerdRepository provides data access methods for the herd table.
type HerdRepository struct {
	db *sql.DB
}

// NewHerdRepository creates a new HerdRepository with the provided database connection.
func NewHerdRepository(db *sql.DB) *HerdRepository {
	return &HerdRepository{db: db}
}

// GetHerds retrieves herds from the database based on filter criteria.
// Sold herds are excluded unless the filter includes them.
// Returns an empty slice if no herds match.
func (r *HerdRepository) GetHerds(filter model.HerdFilter) ([]model.Herd, error) {
	query := `SELECT ` + herdColumns + ` FROM herd WHERE 1=1`
	var args []any

	if !filter.IncludeSold {
		query += " AND is_sold = ?"
		args = append(args, 0)
	}
	if filter.Species != "" {
		query += " AND species = ?"
		args = append(args, filter.Species)
	}

	query += " ORDER BY created_at"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query herd table: %w", err)
	}
	defer rows.Close()

	herds := []model.Herd{}
	for rows.Next() {
		h, err := scanHerd(rows)
		if err != nil {
			return nil, err
		}
		herds = append(herds, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating herd table: %w", err)
	}

	return herds, nil
}

// GetHerdOnID retrieves a single herd by its ID.
func (r *HerdRepository) GetHerdOnID(herdID string) (model.Herd, error) {
	query := `SELECT ` + herdColumns + ` FROM herd WHERE id = ?`

	h, err := scanHerd(r.db.QueryRow(query, herdID))
	if err == sql.ErrNoRows {
		return model.Herd{}, apperrors.ErrHerdNotFound
	}
	if err != nil {
		return model.Herd{}, err
	}

	return h, nil
}

// InsertHerd stores a new herd record.
func (r *HerdRepository) InsertHerd(h model.Herd) error {
	query := `
		INSERT INTO herd (` + herdColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		h.ID, h.Name, h.Species, h.Breed, h.Category, h.Sex, h.HeadCount, FormatTime(h.CreatedAt),
		h.InitialWeightKg, h.DailyWeightGain, h.PreviousDailyWeightGain, formatNullableTime(h.DWGChangeDate),
		h.UseCreationDateForWeight, h.IsBreeder, h.IsPregnant, formatNullableTime(h.JoinedDate), h.CalvingRate,
		h.PreferredSaleyard, h.IsSold,
	)
	if err != nil {
		return fmt.Errorf("failed to insert herd: %w", err)
	}

	return nil
}

// UpdateHerd replaces all mutable fields of an existing herd record.
func (r *HerdRepository) UpdateHerd(h model.Herd) error {
	query := `
		UPDATE herd SET
			name = ?, species = ?, breed = ?, category = ?, sex = ?, head_count = ?,
			initial_weight_kg = ?, daily_weight_gain = ?, previous_daily_weight_gain = ?,
			dwg_change_date = ?, use_creation_date_for_weight = ?,
			is_breeder = ?, is_pregnant = ?, joined_date = ?, calving_rate = ?,
			preferred_saleyard = ?, is_sold = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		h.Name, h.Species, h.Breed, h.Category, h.Sex, h.HeadCount,
		h.InitialWeightKg, h.DailyWeightGain, h.PreviousDailyWeightGain,
		formatNullableTime(h.DWGChangeDate), h.UseCreationDateForWeight,
		h.IsBreeder, h.IsPregnant, formatNullableTime(h.JoinedDate), h.CalvingRate,
		h.PreferredSaleyard, h.IsSold,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update herd: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHerdNotFound
	}

	return nil
}

// MarkSold soft-removes a herd by setting its is_sold flag.
func (r *HerdRepository) MarkSold(herdID string) error {
	result, err := r.db.Exec(`UPDATE herd SET is_sold = 1 WHERE id = ?`, herdID)
	if err != nil {
		return fmt.Errorf("failed to mark herd sold: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHerdNotFound
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHerd(row rowScanner) (model.Herd, error) {
	var h model.Herd
	var breed, sex, saleyard sql.NullString
	var previousDWG sql.NullFloat64
	var createdAtStr string
	var dwgChangeStr, joinedStr sql.NullString

	err := row.Scan(
		&h.ID, &h.Name, &h.Species, &breed, &h.Category, &sex, &h.HeadCount, &createdAtStr,
		&h.InitialWeightKg, &h.DailyWeightGain, &previousDWG, &dwgChangeStr,
		&h.UseCreationDateForWeight, &h.IsBreeder, &h.IsPregnant, &joinedStr, &h.CalvingRate,
		&saleyard, &h.IsSold,
	)
	if err == sql.ErrNoRows {
		return model.Herd{}, err
	}
	if err != nil {
		return model.Herd{}, fmt.Errorf("failed to scan herd table results: %w", err)
	}

	h.Breed = breed.String
	h.Sex = sex.String
	h.PreferredSaleyard = saleyard.String
	if previousDWG.Valid {
		h.PreviousDailyWeightGain = &previousDWG.Float64
	}

	h.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Herd{}, err
	}
	if dwgChangeStr.Valid {
		t, err := ParseTime(dwgChangeStr.String)
		if err != nil {
			return model.Herd{}, err
		}
		h.DWGChangeDate = &t
	}
	if joinedStr.Valid {
		t, err := ParseTime(joinedStr.String)
		if err != nil {
			return model.Herd{}, err
		}
		h.JoinedDate = &t
	}

	return h, nil
}
