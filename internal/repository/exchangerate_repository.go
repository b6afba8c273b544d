package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// ExchangeRateRepository provides data access methods for the daily
// USD/TRY exchange-rate table, keyed by calendar date.
type ExchangeRateRepository struct {
	db *sql.DB
}

// NewExchangeRateRepository creates a new ExchangeRateRepository with the provided database connection.
func NewExchangeRateRepository(db *sql.DB) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// GetRate returns the rate effective on the given date. The bool result
// is false when no rate is stored for that date (weekends, holidays,
// gaps in the synced series).
func (s *ExchangeRateRepository) GetRate(ctx context.Context, date time.Time) (float64, bool, error) {
	var rate float64
	err := s.db.QueryRowContext(ctx,
		`SELECT rate FROM exchange_rates WHERE rate_date = ?`,
		FormatDate(date),
	).Scan(&rate)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query exchange_rates table: %w", err)
	}
	return rate, true, nil
}

// UpsertRate stores or replaces the rate for a date.
func (s *ExchangeRateRepository) UpsertRate(ctx context.Context, date time.Time, rate float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exchange_rates (rate_date, rate)
		VALUES (?, ?)
		ON CONFLICT (rate_date) DO UPDATE SET rate = excluded.rate
	`, FormatDate(date), rate)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}
	return nil
}

// LatestRateDate returns the most recent date with a stored rate. The
// bool result is false when the table is empty.
func (s *ExchangeRateRepository) LatestRateDate(ctx context.Context) (time.Time, bool, error) {
	var dateStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT rate_date FROM exchange_rates ORDER BY rate_date DESC LIMIT 1`,
	).Scan(&dateStr)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query exchange_rates table: %w", err)
	}

	date, err := ParseTime(dateStr)
	if err != nil {
		return time.Time{}, false, err
	}
	return date, true, nil
}

// ListRates returns all stored rates sorted by date ascending.
func (s *ExchangeRateRepository) ListRates(ctx context.Context) ([]model.ExchangeRate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rate_date, rate FROM exchange_rates ORDER BY rate_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rates table: %w", err)
	}
	defer rows.Close()

	rates := []model.ExchangeRate{}
	for rows.Next() {
		var dateStr string
		var r model.ExchangeRate
		if err := rows.Scan(&dateStr, &r.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rates table results: %w", err)
		}
		r.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rates table: %w", err)
	}

	return rates, nil
}
