package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/taxfolio/backend/internal/api/response"
	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/service"
)

// Tax years before capital markets electronification are rejected as
// input mistakes rather than computed into empty reports.
const minTaxYear = 1990

// TaxHandler handles HTTP requests for the tax report endpoint.
type TaxHandler struct {
	taxService *service.TaxService
}

// NewTaxHandler creates a new TaxHandler with the provided service dependency.
func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
	}
}

// Report handles GET requests to compute the capital-gains tax report.
// The year query parameter selects the tax year; it defaults to the
// previous calendar year, the year a filing is normally prepared for.
//
// Endpoint: GET /api/tax/report?year=2024
// Response: 200 OK with TaxReport
// Error: 400 Bad Request if the year parameter is not a usable year
// Error: 500 Internal Server Error if computation fails
func (h *TaxHandler) Report(w http.ResponseWriter, r *http.Request) {
	taxYear := time.Now().UTC().Year() - 1

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < minTaxYear || parsed > time.Now().UTC().Year() {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTaxYear.Error(), yearParam)
			return
		}
		taxYear = parsed
	}

	report, err := h.taxService.ComputeReport(r.Context(), taxYear)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeTaxReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
