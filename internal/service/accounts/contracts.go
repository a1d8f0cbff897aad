package accounts

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// AccountRepository интерфейс репозитория плана счетов
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context, skip, limit uint64) ([]*domain.Account, error)
	Search(ctx context.Context, term string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
