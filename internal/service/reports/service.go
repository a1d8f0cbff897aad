package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/service/reports/models"
)

// Service сервис отчетности
// Все отчеты read-only, данные берутся из SQL view и агрегатов
type Service struct {
	reportRepo ReportRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(reportRepo ReportRepository, logger Logger) *Service {
	return &Service{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// DailyLedger возвращает книгу учета (доходы и расходы) за период
func (s *Service) DailyLedger(ctx context.Context, req *models.LedgerRequest) (*models.LedgerResponse, error) {
	s.logger.Info("DailyLedger: fetching ledger from=%v, to=%v, kind=%v", req.From, req.To, req.Kind)

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("DailyLedger: invalid period: %v", err)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("DailyLedger: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid kind", ErrInvalidInput)
	}

	entries, err := s.reportRepo.DailyLedger(ctx, filter)
	if err != nil {
		s.logger.Error("DailyLedger: repository error: %v", err)
		return nil, fmt.Errorf("%w: DailyLedger - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DailyLedger: successfully fetched %d entries", len(entries))
	return models.FromDomainLedger(entries), nil
}

// GuestRegistry возвращает регистр гостей с историей проживания
func (s *Service) GuestRegistry(ctx context.Context, req *models.GuestRegistryRequest) (*models.GuestRegistryResponse, error) {
	s.logger.Info("GuestRegistry: fetching registry from=%v, to=%v", req.From, req.To)

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("GuestRegistry: invalid period: %v", err)
		return nil, err
	}

	rows, err := s.reportRepo.GuestRegistry(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GuestRegistry: repository error: %v", err)
		return nil, fmt.Errorf("%w: GuestRegistry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GuestRegistry: successfully fetched %d rows", len(rows))
	return models.FromDomainGuestRegistry(rows), nil
}

// Occupancy возвращает регистр занятости комнат
func (s *Service) Occupancy(ctx context.Context, req *models.OccupancyRequest) (*models.OccupancyResponse, error) {
	s.logger.Info("Occupancy: fetching occupancy from=%v, to=%v", req.From, req.To)

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("Occupancy: invalid period: %v", err)
		return nil, err
	}

	rows, err := s.reportRepo.Occupancy(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Occupancy: repository error: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Occupancy: successfully fetched %d rows", len(rows))
	return models.FromDomainOccupancy(rows), nil
}

// FinancialSummary возвращает финансовую сводку за период
func (s *Service) FinancialSummary(ctx context.Context, req *models.LedgerRequest) (*models.FinancialSummaryResponse, error) {
	s.logger.Info("FinancialSummary: fetching summary from=%v, to=%v", req.From, req.To)

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("FinancialSummary: invalid period: %v", err)
		return nil, err
	}

	filter := domain.LedgerFilter{From: req.From, To: req.To}

	summary, err := s.reportRepo.FinancialSummary(ctx, filter)
	if err != nil {
		s.logger.Error("FinancialSummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: FinancialSummary - repository error: %v", ErrInternal, err)
	}

	summary.Period = formatPeriod(req.From, req.To)

	s.logger.Info("FinancialSummary: income=%.2f, expense=%.2f, balance=%.2f",
		summary.TotalIncome, summary.TotalExpense, summary.Balance)
	return models.FromDomainFinancialSummary(summary), nil
}

// validatePeriod проверяет, что границы периода согласованы
func validatePeriod(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	return nil
}

// formatPeriod собирает человекочитаемое описание периода сводки
func formatPeriod(from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return from.Format(domain.DateFormat) + " - " + to.Format(domain.DateFormat)
	case from != nil:
		return "from " + from.Format(domain.DateFormat)
	case to != nil:
		return "until " + to.Format(domain.DateFormat)
	default:
		return "all time"
	}
}
