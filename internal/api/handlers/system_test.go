package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taxfolio/backend/internal/api/handlers"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestSystemHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(
		testutil.NewTestSystemService(t, db),
		testutil.NewTestSettingsService(t, db),
	)

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var health handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if health.Status != "healthy" || health.Database != "connected" {
			t.Errorf("Unexpected health response: %+v", health)
		}
	})

	t.Run("version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()
		handler.Version(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var version handlers.VersionResponse
		if err := json.NewDecoder(w.Body).Decode(&version); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if version.AppVersion == "" {
			t.Error("Expected non-empty app version")
		}
	})

	t.Run("evds key lifecycle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/evds-key", nil)
		w := httptest.NewRecorder()
		handler.EvdsKeyStatus(w, req)

		var status handlers.EvdsKeyStatusResponse
		if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if status.Configured {
			t.Error("Expected key to be unconfigured initially")
		}

		req = httptest.NewRequest(http.MethodPut, "/api/system/evds-key",
			bytes.NewBufferString(`{"api_key": "evds-secret"}`))
		w = httptest.NewRecorder()
		handler.SetEvdsKey(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/api/system/evds-key", nil)
		w = httptest.NewRecorder()
		handler.EvdsKeyStatus(w, req)

		if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !status.Configured {
			t.Error("Expected key to be configured after PUT")
		}
	})

	t.Run("rejects empty key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/system/evds-key",
			bytes.NewBufferString(`{"api_key": "  "}`))
		w := httptest.NewRecorder()
		handler.SetEvdsKey(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
