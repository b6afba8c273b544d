package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/model"
)

// TransactionRepository provides data access methods for the transactions
// table: the full brokerage order history the tax engine replays.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetAllTransactions retrieves the complete transaction history sorted by
// date ascending. The tax engine needs all of it, not just the tax year:
// lots bought in earlier years are still open for later sales.
func (s *TransactionRepository) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT id, symbol, operation_type, executed_quantity, average_price,
		currency, transaction_fee, date, created_at
		FROM transactions
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionRepository) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	query := `
		SELECT id, symbol, operation_type, executed_quantity, average_price,
		currency, transaction_fee, date, created_at
		FROM transactions
		WHERE id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Transaction{}, fmt.Errorf("error iterating transactions table: %w", err)
		}
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}

	return scanTransaction(rows)
}

// InsertTransaction stores a new transaction record.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, symbol, operation_type, executed_quantity,
		average_price, currency, transaction_fee, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Symbol,
		t.OperationType,
		t.ExecutedQuantity,
		t.AveragePrice,
		t.Currency,
		t.TransactionFee,
		t.Date.UTC().Format(time.RFC3339),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction by ID. Returns
// apperrors.ErrTransactionNotFound when no row matched.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var dateStr, createdAtStr string
	var t model.Transaction

	err := rows.Scan(
		&t.ID,
		&t.Symbol,
		&t.OperationType,
		&t.ExecutedQuantity,
		&t.AveragePrice,
		&t.Currency,
		&t.TransactionFee,
		&dateStr,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transactions table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}
