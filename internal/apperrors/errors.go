package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDividendNotFound indicates that a dividend record with the given ID does not exist.
	ErrDividendNotFound = errors.New("dividend not found")

	// ErrExchangeRateNotFound indicates no rate for a specific date.
	ErrExchangeRateNotFound = errors.New("exchange rate for date not found")

	// ErrInflationIndexNotFound indicates no index value for a specific year/month.
	ErrInflationIndexNotFound = errors.New("inflation index for year/month not found")

	// ErrEvdsKeyNotConfigured indicates the EVDS API key has not been stored yet.
	ErrEvdsKeyNotConfigured = errors.New("EVDS API key not configured")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidTaxYear indicates the requested tax year could not be parsed
	// or lies outside the supported range.
	ErrInvalidTaxYear = errors.New("invalid tax year")

	// ErrInvalidCurrency indicates a currency code other than TRY or USD.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidOperationType indicates an operation type other than BUY or SELL.
	ErrInvalidOperationType = errors.New("invalid operation type")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveDividends    = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveExchangeRate = errors.New("failed to retrieve exchange rate")
	ErrFailedToRetrieveIndex        = errors.New("failed to retrieve inflation index")
	ErrFailedToUpdateExchangeRate   = errors.New("failed to update exchange rate")
	ErrFailedToUpdateIndex          = errors.New("failed to update inflation index")
	ErrFailedToComputeTaxReport     = errors.New("failed to compute tax report")
	ErrFailedToStoreEvdsKey         = errors.New("failed to store EVDS API key")
)
