package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults (a TRY buy)
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithSymbol("AAPL").
//	    Sell().
//	    WithQuantity(10).
//	    WithPrice(150).
//	    InUSD().
//	    OnDate(2024, time.March, 15).
//	    Build(t, db)
type TransactionBuilder struct {
	ID               string
	Symbol           string
	OperationType    string
	ExecutedQuantity float64
	AveragePrice     float64
	Currency         string
	TransactionFee   float64
	Date             time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:               MakeID(),
		Symbol:           "THYAO",
		OperationType:    model.OperationBuy,
		ExecutedQuantity: 10,
		AveragePrice:     100,
		Currency:         model.CurrencyTRY,
		TransactionFee:   0,
		Date:             time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithSymbol sets a custom symbol.
func (b *TransactionBuilder) WithSymbol(symbol string) *TransactionBuilder {
	b.Symbol = symbol
	return b
}

// Sell marks the transaction as a sale.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.OperationType = model.OperationSell
	return b
}

// WithQuantity sets the executed quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.ExecutedQuantity = quantity
	return b
}

// WithPrice sets the average price per unit.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.AveragePrice = price
	return b
}

// WithFee sets the transaction fee.
func (b *TransactionBuilder) WithFee(fee float64) *TransactionBuilder {
	b.TransactionFee = fee
	return b
}

// InUSD prices the transaction in USD.
func (b *TransactionBuilder) InUSD() *TransactionBuilder {
	b.Currency = model.CurrencyUSD
	return b
}

// OnDate sets the execution date.
func (b *TransactionBuilder) OnDate(year int, month time.Month, day int) *TransactionBuilder {
	b.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// Build inserts the transaction into the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	tx := model.Transaction{
		ID:               b.ID,
		Symbol:           b.Symbol,
		OperationType:    b.OperationType,
		ExecutedQuantity: b.ExecutedQuantity,
		AveragePrice:     b.AveragePrice,
		Currency:         b.Currency,
		TransactionFee:   b.TransactionFee,
		Date:             b.Date,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := db.Exec(`
		INSERT INTO transactions (id, symbol, operation_type, executed_quantity,
		average_price, currency, transaction_fee, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, tx.ID, tx.Symbol, tx.OperationType, tx.ExecutedQuantity, tx.AveragePrice,
		tx.Currency, tx.TransactionFee,
		tx.Date.Format(time.RFC3339), tx.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}

	return tx
}

// DividendBuilder provides a fluent interface for creating test dividends.
//
// Example usage:
//
//	div := testutil.NewDividend().
//	    WithSymbol("KO").
//	    WithGross(100).
//	    WithWithheld(15).
//	    PaidOn(2024, time.June, 1).
//	    Build(t, db)
type DividendBuilder struct {
	ID          string
	Symbol      string
	PaymentDate time.Time
	GrossAmount float64
	TaxWithheld float64
	NetAmount   float64
	Currency    string
}

// NewDividend creates a DividendBuilder with sensible defaults.
func NewDividend() *DividendBuilder {
	return &DividendBuilder{
		ID:          MakeID(),
		Symbol:      "THYAO",
		PaymentDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		GrossAmount: 100,
		TaxWithheld: 10,
		NetAmount:   90,
		Currency:    model.CurrencyTRY,
	}
}

// WithSymbol sets a custom symbol.
func (b *DividendBuilder) WithSymbol(symbol string) *DividendBuilder {
	b.Symbol = symbol
	return b
}

// WithGross sets the gross amount.
func (b *DividendBuilder) WithGross(amount float64) *DividendBuilder {
	b.GrossAmount = amount
	return b
}

// WithWithheld sets the withheld tax amount and recomputes the net.
func (b *DividendBuilder) WithWithheld(amount float64) *DividendBuilder {
	b.TaxWithheld = amount
	b.NetAmount = b.GrossAmount - amount
	return b
}

// InUSD pays the dividend in USD.
func (b *DividendBuilder) InUSD() *DividendBuilder {
	b.Currency = model.CurrencyUSD
	return b
}

// PaidOn sets the payment date.
func (b *DividendBuilder) PaidOn(year int, month time.Month, day int) *DividendBuilder {
	b.PaymentDate = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// Build inserts the dividend into the database and returns it.
func (b *DividendBuilder) Build(t *testing.T, db *sql.DB) model.Dividend {
	t.Helper()

	div := model.Dividend{
		ID:          b.ID,
		Symbol:      b.Symbol,
		PaymentDate: b.PaymentDate,
		GrossAmount: b.GrossAmount,
		TaxWithheld: b.TaxWithheld,
		NetAmount:   b.NetAmount,
		Currency:    b.Currency,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := db.Exec(`
		INSERT INTO dividends (id, symbol, payment_date, gross_amount, tax_withheld,
		net_amount, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, div.ID, div.Symbol, div.PaymentDate.Format(time.RFC3339), div.GrossAmount,
		div.TaxWithheld, div.NetAmount, div.Currency, div.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test dividend: %v", err)
	}

	return div
}

// SeedExchangeRate stores a USD/TRY rate for a date.
func SeedExchangeRate(t *testing.T, db *sql.DB, year int, month time.Month, day int, rate float64) {
	t.Helper()

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	_, err := db.Exec(`INSERT INTO exchange_rates (rate_date, rate) VALUES (?, ?)`,
		date.Format("2006-01-02"), rate)
	if err != nil {
		t.Fatalf("Failed to seed exchange rate: %v", err)
	}
}

// SeedInflationIndex stores a Yİ-ÜFE value for a month.
func SeedInflationIndex(t *testing.T, db *sql.DB, year int, month time.Month, value float64) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO inflation_index (year, month, value) VALUES (?, ?, ?)`,
		year, int(month), value)
	if err != nil {
		t.Fatalf("Failed to seed inflation index: %v", err)
	}
}
