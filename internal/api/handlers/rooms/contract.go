package rooms

import (
	"context"

	roomsService "github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

// RoomService интерфейс сервиса комнат
type RoomService interface {
	Create(ctx context.Context, req *roomsService.CreateRoomRequest) (*roomsService.RoomResponse, error)
	GetByID(ctx context.Context, id int64) (*roomsService.RoomResponse, error)
	List(ctx context.Context) (*roomsService.RoomListResponse, error)
	UpdateState(ctx context.Context, id int64, req *roomsService.UpdateRoomStateRequest) (*roomsService.RoomResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
