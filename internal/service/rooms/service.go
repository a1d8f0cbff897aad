package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
// Кэшированное состояние комнаты меняют usecase резерваций;
// здесь оно трогается только административным UpdateState
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую комнату
// Новая комната всегда создается доступной
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room number=%s, type=%s", req.Number, req.Type)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		Number:        req.Number,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		State:         domain.RoomAvailable,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("Create: room number=%s already taken", req.Number)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("Create: repository error for room number=%s: %v", req.Number, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает список всех комнат
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching all rooms")

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// UpdateState административно меняет состояние комнаты
// Обычно состоянием управляют usecase резерваций; ручная смена нужна
// для вывода комнаты из оборота и возврата после ремонта
func (s *Service) UpdateState(ctx context.Context, id int64, req *models.UpdateRoomStateRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateState: room id=%d, state=%s", id, req.State)

	state := domain.RoomState(req.State)
	if state != domain.RoomAvailable && state != domain.RoomOccupied {
		s.logger.Warn("UpdateState: unknown state=%s", req.State)
		return nil, fmt.Errorf("%w: state must be one of: available, occupied", ErrInvalidInput)
	}

	if err := s.roomRepo.UpdateState(ctx, id, state); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateState: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateState: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateState - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateState: failed to re-fetch room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateState - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateState: room id=%d is now %s", id, room.State)
	return models.FromDomainRoom(room), nil
}

// validateCreateRequest валидирует запрос на создание комнаты
func validateCreateRequest(req *models.CreateRoomRequest) error {
	if req.Number == "" {
		return fmt.Errorf("%w: number is required", ErrInvalidInput)
	}
	if len(req.Number) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: number is too long", ErrInvalidInput)
	}
	if req.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if len(req.Type) > domain.MaxRoomTypeLength {
		return fmt.Errorf("%w: type is too long", ErrInvalidInput)
	}
	if req.PricePerNight < 0 {
		return fmt.Errorf("%w: pricePerNight must not be negative", ErrInvalidInput)
	}
	return nil
}
