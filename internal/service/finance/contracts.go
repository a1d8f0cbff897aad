package finance

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// FinanceRepository интерфейс репозитория доходов и расходов
type FinanceRepository interface {
	CreateIncome(ctx context.Context, income *domain.Income) (*domain.Income, error)
	ListIncomes(ctx context.Context) ([]*domain.Income, error)
	CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]*domain.Expense, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
