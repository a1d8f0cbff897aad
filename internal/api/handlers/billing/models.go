package billing

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	billingService "github.com/m04kA/HMS-ReservationService/internal/service/billing/models"
)

// CreateInvoiceRequest HTTP request model
type CreateInvoiceRequest struct {
	ReservationID int64   `json:"reservationId"`
	IssueDate     string  `json:"issueDate"` // "2026-03-18"
	Total         float64 `json:"total"`
}

// CreatePaymentRequest HTTP request model
type CreatePaymentRequest struct {
	InvoiceID   int64   `json:"invoiceId"`
	PaymentDate string  `json:"paymentDate"` // "2026-03-20"
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateInvoiceRequest) ToServiceRequest() (*billingService.CreateInvoiceRequest, error) {
	issueDate, err := time.Parse(domain.DateFormat, r.IssueDate)
	if err != nil {
		return nil, err
	}

	return &billingService.CreateInvoiceRequest{
		ReservationID: r.ReservationID,
		IssueDate:     issueDate,
		Total:         r.Total,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePaymentRequest) ToServiceRequest() (*billingService.CreatePaymentRequest, error) {
	paymentDate, err := time.Parse(domain.DateFormat, r.PaymentDate)
	if err != nil {
		return nil, err
	}

	return &billingService.CreatePaymentRequest{
		InvoiceID:   r.InvoiceID,
		PaymentDate: paymentDate,
		Amount:      r.Amount,
		Method:      r.Method,
	}, nil
}
