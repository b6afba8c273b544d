package validation

import (
	"github.com/taxfolio/backend/internal/api/request"
)

// ValidateUpsertExchangeRate validates a manual exchange-rate upsert.
func ValidateUpsertExchangeRate(req request.UpsertExchangeRateRequest) error {
	errors := make(map[string]string)

	if err := validateDate(req.Date); err != "" {
		errors["date"] = err
	}

	if req.Rate <= 0.0 {
		errors["rate"] = "rate must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpsertInflationIndex validates a manual index-value upsert.
func ValidateUpsertInflationIndex(req request.UpsertInflationIndexRequest) error {
	errors := make(map[string]string)

	if req.Year < 1900 || req.Year > 2200 {
		errors["year"] = "year is out of range"
	}

	if req.Month < 1 || req.Month > 12 {
		errors["month"] = "month must be between 1 and 12"
	}

	if req.Value <= 0.0 {
		errors["value"] = "value must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
