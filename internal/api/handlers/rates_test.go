package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taxfolio/backend/internal/api/handlers"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestRatesHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewRatesHandler(
		testutil.NewTestRateService(t, db),
		testutil.NewTestInflationService(t, db),
	)

	t.Run("upsert and list exchange rates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/rates/exchange",
			bytes.NewBufferString(`{"date": "2024-03-01", "rate": 31.36}`))
		w := httptest.NewRecorder()
		handler.UpsertExchangeRate(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/api/rates/exchange", nil)
		w = httptest.NewRecorder()
		handler.ListExchangeRates(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var rates []model.ExchangeRate
		if err := json.NewDecoder(w.Body).Decode(&rates); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(rates) != 1 || rates[0].Rate != 31.36 {
			t.Errorf("Unexpected rates: %+v", rates)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("rejects non-positive rate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/rates/exchange",
			bytes.NewBufferString(`{"date": "2024-03-01", "rate": 0}`))
		w := httptest.NewRecorder()
		handler.UpsertExchangeRate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("upsert and list inflation index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/rates/inflation",
			bytes.NewBufferString(`{"year": 2024, "month": 1, "value": 3035.99}`))
		w := httptest.NewRecorder()
		handler.UpsertInflationIndex(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/api/rates/inflation", nil)
		w = httptest.NewRecorder()
		handler.ListInflationIndex(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var values []model.InflationIndex
		if err := json.NewDecoder(w.Body).Decode(&values); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(values) != 1 || values[0].Month != time.January {
			t.Errorf("Unexpected index values: %+v", values)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/rates/inflation",
			bytes.NewBufferString(`{"year": 2024, "month": 13, "value": 3035.99}`))
		w := httptest.NewRecorder()
		handler.UpsertInflationIndex(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
