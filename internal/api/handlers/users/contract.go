package users

import (
	"context"

	usersService "github.com/m04kA/HMS-ReservationService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	Create(ctx context.Context, req *usersService.CreateUserRequest) (*usersService.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*usersService.UserResponse, error)
	List(ctx context.Context) (*usersService.UserListResponse, error)
	Update(ctx context.Context, id int64, req *usersService.UpdateUserRequest) (*usersService.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
