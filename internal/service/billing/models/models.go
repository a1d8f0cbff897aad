package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе счета
	ErrInvalidStatus = errors.New("invalid invoice status")
)

// Request модели

// CreateInvoiceRequest запрос на выставление счета
type CreateInvoiceRequest struct {
	ReservationID int64     `json:"reservationId"`
	IssueDate     time.Time `json:"issueDate"`
	Total         float64   `json:"total"`
}

// CreatePaymentRequest запрос на регистрацию платежа
type CreatePaymentRequest struct {
	InvoiceID   int64     `json:"invoiceId"`
	PaymentDate time.Time `json:"paymentDate"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
}

// Response модели

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"invoiceId"`
	PaymentDate string  `json:"paymentDate"` // "2026-03-20"
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

// InvoiceResponse ответ с данными счета и его платежами
type InvoiceResponse struct {
	ID            int64             `json:"id"`
	ReservationID int64             `json:"reservationId"`
	IssueDate     string            `json:"issueDate"` // "2026-03-18"
	Total         float64           `json:"total"`
	Status        string            `json:"status"`
	Payments      []PaymentResponse `json:"payments"`
}

// InvoiceListResponse ответ со списком счетов
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Методы конвертации

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		PaymentDate: p.PaymentDate.Format(domain.DateFormat),
		Amount:      p.Amount,
		Method:      p.Method,
	}
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, payment := range payments {
		if paymentResp := FromDomainPayment(payment); paymentResp != nil {
			resp.Payments = append(resp.Payments, *paymentResp)
		}
	}

	return resp
}

// FromDomainInvoice конвертирует domain модель в DTO
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for i := range inv.Payments {
		payments = append(payments, *FromDomainPayment(&inv.Payments[i]))
	}

	return &InvoiceResponse{
		ID:            inv.ID,
		ReservationID: inv.ReservationID,
		IssueDate:     inv.IssueDate.Format(domain.DateFormat),
		Total:         inv.Total,
		Status:        string(inv.Status),
		Payments:      payments,
	}
}

// FromDomainInvoiceList конвертирует список domain моделей в DTO
func FromDomainInvoiceList(invoices []*domain.Invoice) *InvoiceListResponse {
	resp := &InvoiceListResponse{
		Invoices: make([]InvoiceResponse, 0, len(invoices)),
	}

	for _, invoice := range invoices {
		if invoiceResp := FromDomainInvoice(invoice); invoiceResp != nil {
			resp.Invoices = append(resp.Invoices, *invoiceResp)
		}
	}

	return resp
}
