package parameters

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	parameterRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/parameter"
)

// ParameterRepository интерфейс репозитория параметров
type ParameterRepository interface {
	Create(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error)
	GetByID(ctx context.Context, id int64) (*domain.Parameter, error)
	GetByKey(ctx context.Context, key string) (*domain.Parameter, error)
	List(ctx context.Context, skip, limit uint64) ([]*domain.Parameter, error)
	Update(ctx context.Context, id int64, params parameterRepo.UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
