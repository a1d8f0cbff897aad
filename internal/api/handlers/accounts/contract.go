package accounts

import (
	"context"

	accountsService "github.com/m04kA/HMS-ReservationService/internal/service/accounts/models"
)

// AccountService интерфейс сервиса плана счетов
type AccountService interface {
	Create(ctx context.Context, req *accountsService.CreateAccountRequest) (*accountsService.AccountResponse, error)
	GetByID(ctx context.Context, id int64) (*accountsService.AccountResponse, error)
	GetByCode(ctx context.Context, code string) (*accountsService.AccountResponse, error)
	List(ctx context.Context, req *accountsService.ListAccountsRequest) (*accountsService.AccountListResponse, error)
	Search(ctx context.Context, term string) (*accountsService.AccountListResponse, error)
	Update(ctx context.Context, id int64, req *accountsService.UpdateAccountRequest) (*accountsService.AccountResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
