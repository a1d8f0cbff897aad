package parameters

import (
	"context"

	parametersService "github.com/m04kA/HMS-ReservationService/internal/service/parameters/models"
)

// ParameterService интерфейс сервиса параметров
type ParameterService interface {
	Create(ctx context.Context, req *parametersService.CreateParameterRequest) (*parametersService.ParameterResponse, error)
	GetByID(ctx context.Context, id int64) (*parametersService.ParameterResponse, error)
	GetByKey(ctx context.Context, key string) (*parametersService.ParameterResponse, error)
	List(ctx context.Context, req *parametersService.ListParametersRequest) (*parametersService.ParameterListResponse, error)
	Update(ctx context.Context, id int64, req *parametersService.UpdateParameterRequest) (*parametersService.ParameterResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
