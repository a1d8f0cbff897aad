package guests

import (
	"context"

	guestsService "github.com/m04kA/HMS-ReservationService/internal/service/guests/models"
)

// GuestService интерфейс сервиса гостей
type GuestService interface {
	Create(ctx context.Context, req *guestsService.CreateGuestRequest) (*guestsService.GuestResponse, error)
	GetByID(ctx context.Context, id string) (*guestsService.GuestResponse, error)
	List(ctx context.Context) (*guestsService.GuestListResponse, error)
	Update(ctx context.Context, id string, req *guestsService.UpdateGuestRequest) (*guestsService.GuestResponse, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
