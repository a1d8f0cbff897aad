package finance

import (
	"context"

	financeService "github.com/m04kA/HMS-ReservationService/internal/service/finance/models"
)

// FinanceService интерфейс сервиса доходов и расходов
type FinanceService interface {
	CreateIncome(ctx context.Context, req *financeService.CreateIncomeRequest) (*financeService.IncomeResponse, error)
	ListIncomes(ctx context.Context) (*financeService.IncomeListResponse, error)
	CreateExpense(ctx context.Context, req *financeService.CreateExpenseRequest) (*financeService.ExpenseResponse, error)
	ListExpenses(ctx context.Context) (*financeService.ExpenseListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
