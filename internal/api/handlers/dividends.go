package handlers

import (
	"net/http"

	"github.com/taxfolio/backend/internal/api/request"
	"github.com/taxfolio/backend/internal/api/response"
	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/service"
	"github.com/taxfolio/backend/internal/validation"
)

// DividendHandler handles HTTP requests for dividend endpoints.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// AllDividends handles GET requests to retrieve all dividend records.
//
// Endpoint: GET /api/dividend
// Response: 200 OK with array of Dividend
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) AllDividends(w http.ResponseWriter, r *http.Request) {
	dividends, err := h.dividendService.GetAllDividends(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dividends)
}

// CreateDividend handles POST requests to record a dividend payment.
//
// Endpoint: POST /api/dividend
// Request Body: CreateDividendRequest
// Response: 201 Created with Dividend
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dividend := model.Dividend{
		Symbol:      req.Symbol,
		PaymentDate: paymentDate,
		GrossAmount: req.GrossAmount,
		TaxWithheld: req.TaxWithheld,
		NetAmount:   req.NetAmount,
		Currency:    req.Currency,
	}

	if err := h.dividendService.CreateDividend(r.Context(), &dividend); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, dividend)
}
