package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	accountRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/account"
	"github.com/m04kA/HMS-ReservationService/internal/service/accounts/models"
)

// defaultListLimit лимит постраничного списка по умолчанию
const defaultListLimit = 100

// Service сервис для работы с планом счетов
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса плана счетов
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create создает новый счет плана
func (s *Service) Create(ctx context.Context, req *models.CreateAccountRequest) (*models.AccountResponse, error) {
	s.logger.Info("Create: creating account code=%s", req.Code)

	if err := validateAccountFields(req.Code, req.Name, req.Level); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	account := &domain.Account{
		Code:  req.Code,
		Name:  req.Name,
		Type:  req.Type,
		Level: req.Level,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, accountRepo.ErrCodeTaken) {
			s.logger.Warn("Create: account code=%s already taken", req.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Create: repository error for code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created account id=%d", created.ID)
	return models.FromDomainAccount(created), nil
}

// GetByID получает счет плана по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AccountResponse, error) {
	s.logger.Info("GetByID: fetching account id=%d", id)

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("GetByID: account id=%d not found", id)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("GetByID: repository error for account id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAccount(account), nil
}

// GetByCode получает счет плана по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.AccountResponse, error) {
	s.logger.Info("GetByCode: fetching account code=%s", code)

	account, err := s.accountRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("GetByCode: account code=%s not found", code)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAccount(account), nil
}

// List получает постраничный список счетов плана
func (s *Service) List(ctx context.Context, req *models.ListAccountsRequest) (*models.AccountListResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	s.logger.Info("List: fetching accounts skip=%d, limit=%d", req.Skip, limit)

	accounts, err := s.accountRepo.List(ctx, req.Skip, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d accounts", len(accounts))
	return models.FromDomainAccountList(accounts), nil
}

// Search ищет счета плана по подстроке кода или названия
func (s *Service) Search(ctx context.Context, term string) (*models.AccountListResponse, error) {
	s.logger.Info("Search: searching accounts term=%s", term)

	if term == "" {
		s.logger.Warn("Search: empty search term")
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}

	accounts, err := s.accountRepo.Search(ctx, term)
	if err != nil {
		s.logger.Error("Search: repository error for term=%s: %v", term, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d accounts for term=%s", len(accounts), term)
	return models.FromDomainAccountList(accounts), nil
}

// Update обновляет счет плана
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAccountRequest) (*models.AccountResponse, error) {
	s.logger.Info("Update: updating account id=%d", id)

	if err := validateAccountFields(req.Code, req.Name, req.Level); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	account := &domain.Account{
		ID:    id,
		Code:  req.Code,
		Name:  req.Name,
		Type:  req.Type,
		Level: req.Level,
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Update: account id=%d not found", id)
			return nil, ErrAccountNotFound
		}
		if errors.Is(err, accountRepo.ErrCodeTaken) {
			s.logger.Warn("Update: account code=%s already taken", req.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Update: repository error for account id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated account id=%d", id)
	return models.FromDomainAccount(account), nil
}

// Delete удаляет счет плана
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting account id=%d", id)

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Delete: account id=%d not found", id)
			return ErrAccountNotFound
		}
		s.logger.Error("Delete: repository error for account id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted account id=%d", id)
	return nil
}

// validateAccountFields валидирует обязательные поля счета плана
func validateAccountFields(code, name string, level int) error {
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(code) > domain.MaxAccountCodeLength {
		return fmt.Errorf("%w: code is too long", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if level <= 0 {
		return fmt.Errorf("%w: level must be positive", ErrInvalidInput)
	}
	return nil
}
