package reports

import (
	"context"

	reportsService "github.com/m04kA/HMS-ReservationService/internal/service/reports/models"
)

// ReportService интерфейс сервиса отчетов
type ReportService interface {
	DailyLedger(ctx context.Context, req *reportsService.LedgerRequest) (*reportsService.LedgerResponse, error)
	GuestRegistry(ctx context.Context, req *reportsService.GuestRegistryRequest) (*reportsService.GuestRegistryResponse, error)
	Occupancy(ctx context.Context, req *reportsService.OccupancyRequest) (*reportsService.OccupancyResponse, error)
	FinancialSummary(ctx context.Context, req *reportsService.LedgerRequest) (*reportsService.FinancialSummaryResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
