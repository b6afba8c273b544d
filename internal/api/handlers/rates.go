package handlers

import (
	"net/http"
	"time"

	"github.com/taxfolio/backend/internal/api/request"
	"github.com/taxfolio/backend/internal/api/response"
	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/service"
	"github.com/taxfolio/backend/internal/validation"
)

// RatesHandler handles HTTP requests for the exchange-rate and
// inflation-index endpoints. Values normally arrive through the EVDS
// sync job; the PUT endpoints exist for manual backfill.
type RatesHandler struct {
	rateService      *service.RateService
	inflationService *service.InflationService
}

// NewRatesHandler creates a new RatesHandler with the provided service dependencies.
func NewRatesHandler(rateService *service.RateService, inflationService *service.InflationService) *RatesHandler {
	return &RatesHandler{
		rateService:      rateService,
		inflationService: inflationService,
	}
}

// ListExchangeRates handles GET requests to list all stored USD/TRY rates.
//
// Endpoint: GET /api/rates/exchange
// Response: 200 OK with array of ExchangeRate
// Error: 500 Internal Server Error if retrieval fails
func (h *RatesHandler) ListExchangeRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.ListRates(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExchangeRate.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// UpsertExchangeRate handles PUT requests to store a USD/TRY rate for a date.
//
// Endpoint: PUT /api/rates/exchange
// Request Body: UpsertExchangeRateRequest
// Response: 204 No Content
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the upsert fails
func (h *RatesHandler) UpsertExchangeRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpsertExchangeRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertExchangeRate(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.rateService.UpsertRate(r.Context(), date, req.Rate); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateExchangeRate.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ListInflationIndex handles GET requests to list all stored Yİ-ÜFE values.
//
// Endpoint: GET /api/rates/inflation
// Response: 200 OK with array of InflationIndex
// Error: 500 Internal Server Error if retrieval fails
func (h *RatesHandler) ListInflationIndex(w http.ResponseWriter, r *http.Request) {
	values, err := h.inflationService.ListIndex(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveIndex.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, values)
}

// UpsertInflationIndex handles PUT requests to store a Yİ-ÜFE value for a month.
//
// Endpoint: PUT /api/rates/inflation
// Request Body: UpsertInflationIndexRequest
// Response: 204 No Content
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the upsert fails
func (h *RatesHandler) UpsertInflationIndex(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpsertInflationIndexRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertInflationIndex(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.inflationService.UpsertIndex(r.Context(), req.Year, time.Month(req.Month), req.Value); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateIndex.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
