package validation

import (
	"fmt"
	"strings"

	"github.com/taxfolio/backend/internal/api/request"
)

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - symbol: Must be non-empty
//   - payment_date: Must be in YYYY-MM-DD or RFC 3339 format
//   - gross_amount: Must be positive
//   - tax_withheld: Must not be negative
//   - net_amount: Must not be negative
//   - currency: Must be TRY or USD
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if err := validateDate(req.PaymentDate); err != "" {
		errors["paymentDate"] = err
	}

	if req.GrossAmount <= 0.0 {
		errors["grossAmount"] = "gross_amount must be positive"
	}

	if req.TaxWithheld < 0.0 {
		errors["taxWithheld"] = "tax_withheld must not be negative"
	}

	if req.NetAmount < 0.0 {
		errors["netAmount"] = "net_amount must not be negative"
	}

	if !ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
