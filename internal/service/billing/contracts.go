package billing

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByInvoiceIDs(ctx context.Context, invoiceIDs []int64) ([]*domain.Payment, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
