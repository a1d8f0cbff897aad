package reservations

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByRoom(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
