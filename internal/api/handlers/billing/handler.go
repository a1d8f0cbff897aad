package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	billingService "github.com/m04kA/HMS-ReservationService/internal/service/billing"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInvoiceID    = "некорректный ID счета"
	msgInvalidInput        = "некорректные данные"
	msgInvoiceNotFound     = "счет не найден"
	msgReservationNotFound = "резервация не найдена"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateInvoice POST /api/v1/invoices
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /invoices - Failed to parse issue date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateInvoice(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid input: reservation_id=%d, error=%v", req.ReservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, billingService.ErrReservationNotFound):
			h.logger.Warn("POST /invoices - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: reservation_id=%d, error=%v",
				req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created successfully: invoice_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetInvoice GET /api/v1/invoices/{invoiceId}
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	invoiceID, err := strconv.ParseInt(vars["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /invoices/{id} - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	result, err := h.service.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrInvoiceNotFound):
			h.logger.Warn("GET /invoices/{id} - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		default:
			h.logger.Error("GET /invoices/{id} - Failed to get invoice: invoice_id=%d, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListInvoices GET /api/v1/invoices
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListInvoices(r.Context())
	if err != nil {
		h.logger.Error("GET /invoices - Failed to list invoices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreatePayment POST /api/v1/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /payments - Failed to parse payment date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreatePayment(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: invoice_id=%d, error=%v", req.InvoiceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, billingService.ErrInvoiceNotFound):
			h.logger.Warn("POST /payments - Invoice not found: invoice_id=%d", req.InvoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		default:
			h.logger.Error("POST /payments - Failed to create payment: invoice_id=%d, error=%v",
				req.InvoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created successfully: payment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListPayments GET /api/v1/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("GET /payments - Failed to list payments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
