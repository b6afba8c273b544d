package testutil

import (
	"database/sql"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/secrets"
	"github.com/taxfolio/backend/internal/service"
	"github.com/taxfolio/backend/internal/tax"
)

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(transactionRepo, zerolog.Nop())
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	dividendRepo := repository.NewDividendRepository(db)

	return service.NewDividendService(dividendRepo, zerolog.Nop())
}

func NewTestRateService(t *testing.T, db *sql.DB) *service.RateService {
	t.Helper()

	rateRepo := repository.NewExchangeRateRepository(db)

	return service.NewRateService(rateRepo, zerolog.Nop())
}

func NewTestInflationService(t *testing.T, db *sql.DB) *service.InflationService {
	t.Helper()

	indexRepo := repository.NewInflationIndexRepository(db)

	return service.NewInflationService(indexRepo, zerolog.Nop())
}

func NewTestTaxService(t *testing.T, db *sql.DB) *service.TaxService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	engine := tax.New(NewTestRateService(t, db), NewTestInflationService(t, db), zerolog.Nop())

	return service.NewTaxService(transactionRepo, dividendRepo, engine, zerolog.Nop())
}

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)
	encryptor := NewTestEncryptor(t)

	return service.NewSettingsService(settingRepo, encryptor, zerolog.Nop())
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestEncryptor creates an Encryptor with a freshly generated key.
func NewTestEncryptor(t *testing.T) *secrets.Encryptor {
	t.Helper()

	key := MakeFernetKey(t)
	encryptor, err := secrets.NewEncryptor(key)
	if err != nil {
		t.Fatalf("Failed to create test encryptor: %v", err)
	}
	return encryptor
}

// MakeFernetKey generates an encoded fernet key for use in tests.
func MakeFernetKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
