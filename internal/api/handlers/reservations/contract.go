package reservations

import (
	"context"

	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/cancel_reservation"
	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationUseCase интерфейс use case создания резервации
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// CancelReservationUseCase интерфейс use case отмены резервации
type CancelReservationUseCase interface {
	Execute(ctx context.Context, req *cancelReservation.Request) (*cancelReservation.Response, error)
}

// ReservationService интерфейс сервиса чтения резерваций
type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*reservationsService.ReservationResponse, error)
	List(ctx context.Context) (*reservationsService.ReservationListResponse, error)
	ListByRoom(ctx context.Context, req *reservationsService.ListByRoomRequest) (*reservationsService.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
