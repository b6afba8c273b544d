package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Brokerage order history
		CREATE TABLE transactions (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(16) NOT NULL,
			operation_type VARCHAR(4) NOT NULL,
			executed_quantity REAL NOT NULL,
			average_price REAL NOT NULL,
			currency VARCHAR(3) NOT NULL,
			transaction_fee REAL NOT NULL DEFAULT 0,
			date TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_transactions_symbol_date ON transactions (symbol, date);
		CREATE INDEX idx_transactions_date ON transactions (date);

		-- Dividend payments
		CREATE TABLE dividends (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(16) NOT NULL,
			payment_date TEXT NOT NULL,
			gross_amount REAL NOT NULL,
			tax_withheld REAL NOT NULL DEFAULT 0,
			net_amount REAL NOT NULL,
			currency VARCHAR(3) NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_dividends_payment_date ON dividends (payment_date);

		-- Daily USD/TRY rates
		CREATE TABLE exchange_rates (
			rate_date TEXT NOT NULL PRIMARY KEY,
			rate REAL NOT NULL
		);

		-- Monthly producer price index
		CREATE TABLE inflation_index (
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (year, month)
		);

		-- Key/value settings
		CREATE TABLE settings (
			key TEXT NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"dividends",
		"exchange_rates",
		"inflation_index",
		"settings",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "transactions")
//	assert.Equal(t, 2, count)
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "transactions", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
