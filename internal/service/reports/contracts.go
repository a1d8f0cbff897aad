package reports

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReportRepository интерфейс репозитория отчетов
type ReportRepository interface {
	DailyLedger(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error)
	GuestRegistry(ctx context.Context, filter domain.GuestRegistryFilter) ([]*domain.GuestRegistryRow, error)
	Occupancy(ctx context.Context, filter domain.OccupancyFilter) ([]*domain.OccupancyRow, error)
	FinancialSummary(ctx context.Context, filter domain.LedgerFilter) (*domain.FinancialSummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
