package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения резерваций
// Создание и отмена идут через usecase с сериализуемой транзакцией
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает список всех резерваций
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching all reservations")

	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// ListByRoom получает резервации комнаты с опциональным фильтром по статусу
func (s *Service) ListByRoom(ctx context.Context, req *models.ListByRoomRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByRoom: fetching reservations for room=%d, status=%v", req.RoomID, req.Status)

	if req.RoomID <= 0 {
		s.logger.Warn("ListByRoom: invalid room id=%d", req.RoomID)
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByRoom: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByRoom(ctx, filter)
	if err != nil {
		s.logger.Error("ListByRoom: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRoom: successfully fetched %d reservations for room=%d", len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}
