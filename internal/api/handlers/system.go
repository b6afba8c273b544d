package handlers

import (
	"net/http"
	"strings"

	"github.com/taxfolio/backend/internal/api/request"
	"github.com/taxfolio/backend/internal/api/response"
	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService   *service.SystemService
	settingsService *service.SettingsService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, settingsService *service.SettingsService) *SystemHandler {
	return &SystemHandler{
		systemService:   systemService,
		settingsService: settingsService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// EvdsKeyStatusResponse reports whether an EVDS API key is stored. The
// key itself is never returned.
type EvdsKeyStatusResponse struct {
	Configured bool `json:"configured"`
}

// EvdsKeyStatus handles GET requests for the EVDS key configuration state.
//
// Endpoint: GET /api/system/evds-key
// Response: 200 OK with EvdsKeyStatusResponse
// Error: 500 Internal Server Error if the lookup fails
func (h *SystemHandler) EvdsKeyStatus(w http.ResponseWriter, r *http.Request) {
	configured, err := h.settingsService.HasEvdsAPIKey(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, EvdsKeyStatusResponse{Configured: configured})
}

// SetEvdsKey handles PUT requests to store the EVDS API key.
//
// Endpoint: PUT /api/system/evds-key
// Request Body: SetEvdsKeyRequest
// Response: 204 No Content
// Error: 400 Bad Request if the key is empty or the body is invalid
// Error: 500 Internal Server Error if storing fails
func (h *SystemHandler) SetEvdsKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetEvdsKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "api_key is required")
		return
	}

	if err := h.settingsService.SetEvdsAPIKey(r.Context(), req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStoreEvdsKey.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
