package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taxfolio/backend/internal/api/handlers"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestTaxHandler_Report(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewTaxHandler(testutil.NewTestTaxService(t, db))

	testutil.NewTransaction().WithSymbol("THYAO").
		WithQuantity(10).WithPrice(100).OnDate(2024, time.January, 10).Build(t, db)
	testutil.NewTransaction().WithSymbol("THYAO").Sell().
		WithQuantity(10).WithPrice(150).OnDate(2024, time.November, 10).Build(t, db)

	t.Run("explicit year", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/tax/report",
			map[string]string{"year": "2024"})
		w := httptest.NewRecorder()
		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report model.TaxReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if report.TaxYear != 2024 {
			t.Errorf("Expected tax year 2024, got %d", report.TaxYear)
		}
		if report.TotalProfitLoss != 500 {
			t.Errorf("Expected total profit/loss 500, got %v", report.TotalProfitLoss)
		}
	})

	t.Run("defaults to previous year", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax/report", nil)
		w := httptest.NewRecorder()
		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var report model.TaxReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if want := time.Now().UTC().Year() - 1; report.TaxYear != want {
			t.Errorf("Expected tax year %d, got %d", want, report.TaxYear)
		}
	})

	t.Run("rejects unusable years", func(t *testing.T) {
		for _, year := range []string{"abc", "1850", "2190", "-5"} {
			req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/tax/report",
				map[string]string{"year": year})
			w := httptest.NewRecorder()
			handler.Report(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("year %q: expected 400, got %d", year, w.Code)
			}
		}
	})
}
