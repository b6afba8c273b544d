package model

import "time"

// Operation types for brokerage transactions.
const (
	OperationBuy  = "BUY"
	OperationSell = "SELL"
)

// Currencies accepted on stored records. TRY is the home currency; USD
// amounts are normalized by the tax engine using the stored rate table.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
)

// Transaction represents a single executed brokerage order.
// Used internally for calculations and data processing.
type Transaction struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	OperationType    string    `json:"operationType"`
	ExecutedQuantity float64   `json:"executedQuantity"`
	AveragePrice     float64   `json:"averagePrice"`
	Currency         string    `json:"currency"`
	TransactionFee   float64   `json:"transactionFee"`
	Date             time.Time `json:"date"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}
