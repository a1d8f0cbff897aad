package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/finance/models"
)

// Service сервис для учета доходов и расходов
type Service struct {
	financeRepo     FinanceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса финансов
func NewService(
	financeRepo FinanceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		financeRepo:     financeRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// CreateIncome регистрирует доход
// Если указана резервация, она должна существовать
func (s *Service) CreateIncome(ctx context.Context, req *models.CreateIncomeRequest) (*models.IncomeResponse, error) {
	s.logger.Info("CreateIncome: creating income amount=%.2f, reservation=%v", req.Amount, req.ReservationID)

	if req.Amount <= 0 {
		s.logger.Warn("CreateIncome: invalid amount=%.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.EntryDate.IsZero() {
		s.logger.Warn("CreateIncome: entryDate is missing")
		return nil, fmt.Errorf("%w: entryDate is required", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		s.logger.Warn("CreateIncome: description is too long")
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.ReservationID != nil {
		if _, err := s.reservationRepo.GetByID(ctx, *req.ReservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("CreateIncome: reservation id=%d not found", *req.ReservationID)
				return nil, ErrReservationNotFound
			}
			s.logger.Error("CreateIncome: failed to get reservation id=%d: %v", *req.ReservationID, err)
			return nil, fmt.Errorf("%w: CreateIncome - repository error: %v", ErrInternal, err)
		}
	}

	income := &domain.Income{
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		Description:   req.Description,
		EntryDate:     req.EntryDate,
	}

	created, err := s.financeRepo.CreateIncome(ctx, income)
	if err != nil {
		s.logger.Error("CreateIncome: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateIncome - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateIncome: successfully created income id=%d", created.ID)
	return models.FromDomainIncome(created), nil
}

// ListIncomes получает список всех доходов
func (s *Service) ListIncomes(ctx context.Context) (*models.IncomeListResponse, error) {
	s.logger.Info("ListIncomes: fetching all incomes")

	incomes, err := s.financeRepo.ListIncomes(ctx)
	if err != nil {
		s.logger.Error("ListIncomes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListIncomes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListIncomes: successfully fetched %d incomes", len(incomes))
	return models.FromDomainIncomeList(incomes), nil
}

// CreateExpense регистрирует расход
func (s *Service) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.ExpenseResponse, error) {
	s.logger.Info("CreateExpense: creating expense amount=%.2f", req.Amount)

	if req.Description == "" {
		s.logger.Warn("CreateExpense: description is missing")
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		s.logger.Warn("CreateExpense: description is too long")
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		s.logger.Warn("CreateExpense: invalid amount=%.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.EntryDate.IsZero() {
		s.logger.Warn("CreateExpense: entryDate is missing")
		return nil, fmt.Errorf("%w: entryDate is required", ErrInvalidInput)
	}

	expense := &domain.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		EntryDate:   req.EntryDate,
	}

	created, err := s.financeRepo.CreateExpense(ctx, expense)
	if err != nil {
		s.logger.Error("CreateExpense: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateExpense - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateExpense: successfully created expense id=%d", created.ID)
	return models.FromDomainExpense(created), nil
}

// ListExpenses получает список всех расходов
func (s *Service) ListExpenses(ctx context.Context) (*models.ExpenseListResponse, error) {
	s.logger.Info("ListExpenses: fetching all expenses")

	expenses, err := s.financeRepo.ListExpenses(ctx)
	if err != nil {
		s.logger.Error("ListExpenses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExpenses - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListExpenses: successfully fetched %d expenses", len(expenses))
	return models.FromDomainExpenseList(expenses), nil
}
