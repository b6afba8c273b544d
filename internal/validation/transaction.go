package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/taxfolio/backend/internal/api/request"
	"github.com/taxfolio/backend/internal/model"
)

// ValidOperationType contains the allowed operation type values.
var ValidOperationType = map[string]bool{
	model.OperationBuy: true, model.OperationSell: true,
}

// ValidCurrency contains the allowed currency values.
var ValidCurrency = map[string]bool{
	model.CurrencyTRY: true, model.CurrencyUSD: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - symbol: Must be non-empty
//   - operation_type: Must be BUY or SELL
//   - executed_quantity: Must be positive
//   - average_price: Must be positive
//   - currency: Must be TRY or USD
//   - transaction_fee: Must not be negative
//   - date: Must be in YYYY-MM-DD or RFC 3339 format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.OperationType) == "" {
		errors["operationType"] = "operation_type is required"
	} else if !ValidOperationType[req.OperationType] {
		errors["operationType"] = fmt.Sprintf("invalid operation_type: %s", req.OperationType)
	}

	if req.ExecutedQuantity <= 0.0 {
		errors["executedQuantity"] = "executed_quantity must be positive"
	}

	if req.AveragePrice <= 0.0 {
		errors["averagePrice"] = "average_price must be positive"
	}

	if !ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	if req.TransactionFee < 0.0 {
		errors["transactionFee"] = "transaction_fee must not be negative"
	}

	if err := validateDate(req.Date); err != "" {
		errors["date"] = err
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// validateDate accepts YYYY-MM-DD or RFC 3339 and returns an error
// message, empty when valid.
func validateDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return "date is required"
	}
	if _, err := time.Parse("2006-01-02", date); err == nil {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, date); err == nil {
		return ""
	}
	return fmt.Sprintf("invalid date: %s", date)
}
