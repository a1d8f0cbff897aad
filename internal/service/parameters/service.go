package parameters

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	parameterRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/parameter"
	"github.com/m04kA/HMS-ReservationService/internal/service/parameters/models"
)

// defaultListLimit лимит постраничного списка по умолчанию
const defaultListLimit = 100

// Service сервис для работы с параметрами конфигурации
type Service struct {
	parameterRepo ParameterRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса параметров
func NewService(parameterRepo ParameterRepository, logger Logger) *Service {
	return &Service{
		parameterRepo: parameterRepo,
		logger:        logger,
	}
}

// Create создает новый параметр
func (s *Service) Create(ctx context.Context, req *models.CreateParameterRequest) (*models.ParameterResponse, error) {
	s.logger.Info("Create: creating parameter key=%s", req.Key)

	if req.Key == "" {
		s.logger.Warn("Create: key is missing")
		return nil, fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if len(req.Key) > domain.MaxParameterKeyLength {
		s.logger.Warn("Create: key=%s is too long", req.Key)
		return nil, fmt.Errorf("%w: key is too long", ErrInvalidInput)
	}
	if req.Value == "" {
		s.logger.Warn("Create: value is missing for key=%s", req.Key)
		return nil, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}

	parameter := &domain.Parameter{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}

	created, err := s.parameterRepo.Create(ctx, parameter)
	if err != nil {
		if errors.Is(err, parameterRepo.ErrKeyTaken) {
			s.logger.Warn("Create: parameter key=%s already taken", req.Key)
			return nil, ErrKeyTaken
		}
		s.logger.Error("Create: repository error for key=%s: %v", req.Key, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created parameter id=%d", created.ID)
	return models.FromDomainParameter(created), nil
}

// GetByID получает параметр по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ParameterResponse, error) {
	s.logger.Info("GetByID: fetching parameter id=%d", id)

	parameter, err := s.parameterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, parameterRepo.ErrParameterNotFound) {
			s.logger.Warn("GetByID: parameter id=%d not found", id)
			return nil, ErrParameterNotFound
		}
		s.logger.Error("GetByID: repository error for parameter id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParameter(parameter), nil
}

// GetByKey получает параметр по ключу
func (s *Service) GetByKey(ctx context.Context, key string) (*models.ParameterResponse, error) {
	s.logger.Info("GetByKey: fetching parameter key=%s", key)

	parameter, err := s.parameterRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, parameterRepo.ErrParameterNotFound) {
			s.logger.Warn("GetByKey: parameter key=%s not found", key)
			return nil, ErrParameterNotFound
		}
		s.logger.Error("GetByKey: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: GetByKey - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParameter(parameter), nil
}

// List получает постраничный список параметров
func (s *Service) List(ctx context.Context, req *models.ListParametersRequest) (*models.ParameterListResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	s.logger.Info("List: fetching parameters skip=%d, limit=%d", req.Skip, limit)

	parameters, err := s.parameterRepo.List(ctx, req.Skip, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d parameters", len(parameters))
	return models.FromDomainParameterList(parameters), nil
}

// Update частично обновляет параметр (значение и/или описание)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateParameterRequest) (*models.ParameterResponse, error) {
	s.logger.Info("Update: updating parameter id=%d", id)

	if req.Value == nil && req.Description == nil {
		s.logger.Warn("Update: nothing to update for parameter id=%d", id)
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.Value != nil && *req.Value == "" {
		s.logger.Warn("Update: empty value for parameter id=%d", id)
		return nil, fmt.Errorf("%w: value must not be empty", ErrInvalidInput)
	}

	params := parameterRepo.UpdateParams{
		Value:       req.Value,
		Description: req.Description,
	}

	if err := s.parameterRepo.Update(ctx, id, params); err != nil {
		if errors.Is(err, parameterRepo.ErrParameterNotFound) {
			s.logger.Warn("Update: parameter id=%d not found", id)
			return nil, ErrParameterNotFound
		}
		s.logger.Error("Update: repository error for parameter id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.parameterRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to fetch updated parameter id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated parameter id=%d", id)
	return models.FromDomainParameter(updated), nil
}

// Delete удаляет параметр
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting parameter id=%d", id)

	if err := s.parameterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, parameterRepo.ErrParameterNotFound) {
			s.logger.Warn("Delete: parameter id=%d not found", id)
			return ErrParameterNotFound
		}
		s.logger.Error("Delete: repository error for parameter id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted parameter id=%d", id)
	return nil
}
