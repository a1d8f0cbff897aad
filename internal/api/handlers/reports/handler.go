package reports

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	reportsService "github.com/m04kA/HMS-ReservationService/internal/service/reports"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// DailyLedger GET /api/v1/reports/daily-ledger
func (h *Handler) DailyLedger(w http.ResponseWriter, r *http.Request) {
	req, err := ledgerRequestFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/daily-ledger - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.DailyLedger(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/daily-ledger - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reports/daily-ledger - Failed to build ledger: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GuestRegistry GET /api/v1/reports/guest-registry
func (h *Handler) GuestRegistry(w http.ResponseWriter, r *http.Request) {
	req, err := guestRegistryRequestFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/guest-registry - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GuestRegistry(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/guest-registry - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reports/guest-registry - Failed to build guest registry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Occupancy GET /api/v1/reports/occupancy
func (h *Handler) Occupancy(w http.ResponseWriter, r *http.Request) {
	req, err := occupancyRequestFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Occupancy(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/occupancy - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reports/occupancy - Failed to build occupancy registry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// FinancialSummary GET /api/v1/reports/financial-summary
func (h *Handler) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	req, err := ledgerRequestFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/financial-summary - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.FinancialSummary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/financial-summary - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reports/financial-summary - Failed to build summary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
