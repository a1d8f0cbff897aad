package finance

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	financeService "github.com/m04kA/HMS-ReservationService/internal/service/finance"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные"
	msgReservationNotFound = "резервация не найдена"
)

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateIncome POST /api/v1/incomes
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req CreateIncomeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /incomes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /incomes - Failed to parse entry date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateIncome(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, financeService.ErrInvalidInput):
			h.logger.Warn("POST /incomes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, financeService.ErrReservationNotFound):
			h.logger.Warn("POST /incomes - Reservation not found: reservation_id=%v", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /incomes - Failed to create income: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incomes - Income created successfully: income_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListIncomes GET /api/v1/incomes
func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListIncomes(r.Context())
	if err != nil {
		h.logger.Error("GET /incomes - Failed to list incomes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateExpense POST /api/v1/expenses
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /expenses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /expenses - Failed to parse entry date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateExpense(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, financeService.ErrInvalidInput):
			h.logger.Warn("POST /expenses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /expenses - Failed to create expense: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /expenses - Expense created successfully: expense_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListExpenses GET /api/v1/expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListExpenses(r.Context())
	if err != nil {
		h.logger.Error("GET /expenses - Failed to list expenses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
