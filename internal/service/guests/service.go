package guests

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	guestRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/guest"
	"github.com/m04kA/HMS-ReservationService/internal/service/guests/models"
)

// Service сервис для работы с гостями
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// Create регистрирует нового гостя
// ID генерируется сервером (UUID), клиентские ID не принимаются
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Create: registering guest document=%s", req.DocumentNumber)

	if err := validateGuestFields(req.FullName, req.DocumentNumber); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	guest := &domain.Guest{
		ID:             uuid.NewString(),
		FullName:       req.FullName,
		DocumentNumber: req.DocumentNumber,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		if errors.Is(err, guestRepo.ErrDocumentTaken) {
			s.logger.Warn("Create: document=%s already registered", req.DocumentNumber)
			return nil, ErrDocumentTaken
		}
		s.logger.Error("Create: repository error for document=%s: %v", req.DocumentNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered guest id=%s", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetByID получает гостя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.GuestResponse, error) {
	s.logger.Info("GetByID: fetching guest id=%s", id)

	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%s not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// List получает список всех гостей
func (s *Service) List(ctx context.Context) (*models.GuestListResponse, error) {
	s.logger.Info("List: fetching all guests")

	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d guests", len(guests))
	return models.FromDomainGuestList(guests), nil
}

// Update обновляет данные гостя
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Update: updating guest id=%s", id)

	if err := validateGuestFields(req.FullName, req.DocumentNumber); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	guest := &domain.Guest{
		ID:             id,
		FullName:       req.FullName,
		DocumentNumber: req.DocumentNumber,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Update: guest id=%s not found", id)
			return nil, ErrGuestNotFound
		}
		if errors.Is(err, guestRepo.ErrDocumentTaken) {
			s.logger.Warn("Update: document=%s already registered", req.DocumentNumber)
			return nil, ErrDocumentTaken
		}
		s.logger.Error("Update: repository error for guest id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated guest id=%s", id)
	return models.FromDomainGuest(guest), nil
}

// Delete удаляет гостя
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting guest id=%s", id)

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Delete: guest id=%s not found", id)
			return ErrGuestNotFound
		}
		s.logger.Error("Delete: repository error for guest id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted guest id=%s", id)
	return nil
}

// validateGuestFields валидирует обязательные поля гостя
func validateGuestFields(fullName, documentNumber string) error {
	if fullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len(fullName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}
	if documentNumber == "" {
		return fmt.Errorf("%w: documentNumber is required", ErrInvalidInput)
	}
	if len(documentNumber) > domain.MaxDocumentLength {
		return fmt.Errorf("%w: documentNumber is too long", ErrInvalidInput)
	}
	return nil
}
