package guests

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context) ([]*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
