package billing

import (
	"context"

	billingService "github.com/m04kA/HMS-ReservationService/internal/service/billing/models"
)

// BillingService интерфейс сервиса счетов и платежей
type BillingService interface {
	CreateInvoice(ctx context.Context, req *billingService.CreateInvoiceRequest) (*billingService.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id int64) (*billingService.InvoiceResponse, error)
	ListInvoices(ctx context.Context) (*billingService.InvoiceListResponse, error)
	CreatePayment(ctx context.Context, req *billingService.CreatePaymentRequest) (*billingService.PaymentResponse, error)
	ListPayments(ctx context.Context) (*billingService.PaymentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
