package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// InflationIndexRepository provides data access methods for the monthly
// Yİ-ÜFE index table, keyed by year and month.
type InflationIndexRepository struct {
	db *sql.DB
}

// NewInflationIndexRepository creates a new InflationIndexRepository with the provided database connection.
func NewInflationIndexRepository(db *sql.DB) *InflationIndexRepository {
	return &InflationIndexRepository{db: db}
}

// GetIndex returns the index value for a year/month. The bool result is
// false when the month has no stored value.
func (s *InflationIndexRepository) GetIndex(ctx context.Context, year int, month time.Month) (float64, bool, error) {
	var value float64
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM inflation_index WHERE year = ? AND month = ?`,
		year, int(month),
	).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query inflation_index table: %w", err)
	}
	return value, true, nil
}

// UpsertIndex stores or replaces the index value for a year/month.
func (s *InflationIndexRepository) UpsertIndex(ctx context.Context, year int, month time.Month, value float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inflation_index (year, month, value)
		VALUES (?, ?, ?)
		ON CONFLICT (year, month) DO UPDATE SET value = excluded.value
	`, year, int(month), value)
	if err != nil {
		return fmt.Errorf("failed to upsert inflation index: %w", err)
	}
	return nil
}

// ListIndex returns all stored index values sorted by year then month.
func (s *InflationIndexRepository) ListIndex(ctx context.Context) ([]model.InflationIndex, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT year, month, value FROM inflation_index ORDER BY year ASC, month ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inflation_index table: %w", err)
	}
	defer rows.Close()

	values := []model.InflationIndex{}
	for rows.Next() {
		var monthInt int
		var v model.InflationIndex
		if err := rows.Scan(&v.Year, &monthInt, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan inflation_index table results: %w", err)
		}
		v.Month = time.Month(monthInt)
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inflation_index table: %w", err)
	}

	return values, nil
}
