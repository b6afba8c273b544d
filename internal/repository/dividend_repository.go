package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// DividendRepository provides data access methods for the dividends table.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetAllDividends retrieves all dividend records sorted by payment date ascending.
func (s *DividendRepository) GetAllDividends(ctx context.Context) ([]model.Dividend, error) {
	return s.queryDividends(ctx, `
		SELECT id, symbol, payment_date, gross_amount, tax_withheld, net_amount, currency, created_at
		FROM dividends
		ORDER BY payment_date ASC
	`)
}

// GetDividendsByPaymentDate retrieves dividend records whose payment date
// falls inside the inclusive [startDate, endDate] window, sorted by
// payment date ascending.
func (s *DividendRepository) GetDividendsByPaymentDate(ctx context.Context, startDate, endDate time.Time) ([]model.Dividend, error) {
	return s.queryDividends(ctx, `
		SELECT id, symbol, payment_date, gross_amount, tax_withheld, net_amount, currency, created_at
		FROM dividends
		WHERE payment_date >= ? AND payment_date <= ?
		ORDER BY payment_date ASC
	`, startDate.UTC().Format(time.RFC3339), endDate.UTC().Format(time.RFC3339))
}

// InsertDividend stores a new dividend record.
func (s *DividendRepository) InsertDividend(ctx context.Context, d *model.Dividend) error {
	query := `
		INSERT INTO dividends (id, symbol, payment_date, gross_amount, tax_withheld,
		net_amount, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		d.ID,
		d.Symbol,
		d.PaymentDate.UTC().Format(time.RFC3339),
		d.GrossAmount,
		d.TaxWithheld,
		d.NetAmount,
		d.Currency,
		d.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}
	return nil
}

func (s *DividendRepository) queryDividends(ctx context.Context, query string, args ...any) ([]model.Dividend, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividends table: %w", err)
	}
	defer rows.Close()

	dividends := []model.Dividend{}
	for rows.Next() {
		var paymentDateStr, createdAtStr string
		var d model.Dividend

		err := rows.Scan(
			&d.ID,
			&d.Symbol,
			&paymentDateStr,
			&d.GrossAmount,
			&d.TaxWithheld,
			&d.NetAmount,
			&d.Currency,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividends table results: %w", err)
		}

		d.PaymentDate, err = ParseTime(paymentDateStr)
		if err != nil || d.PaymentDate.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		d.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || d.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		dividends = append(dividends, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividends table: %w", err)
	}

	return dividends, nil
}
