package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечения дат и запись новой резервации должны быть атомарны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, guest=%s, start=%s, end=%s",
		req.RoomID, req.GuestID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем диапазон дат до похода в БД
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		uc.logger.Warn("CreateReservation: invalid range start=%s, end=%s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем комнату с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Проверяем состояние комнаты
		if !room.IsAvailable() {
			uc.logger.Warn("CreateReservation: room id=%d is %s", room.ID, room.State)
			return ErrRoomUnavailable
		}

		// 3.3. Получаем активные резервации комнаты с блокировкой (FOR UPDATE)
		filter := domain.RoomReservationsFilter{
			RoomID: req.RoomID,
			Status: ptr.Ptr(domain.StatusBooked),
		}

		reservations, err := uc.reservationRepo.ListByRoom(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.4. Проверяем пересечение дат с существующими резервациями
		if conflict := findDateConflict(reservations, req.StartDate, req.EndDate); conflict != nil {
			uc.logger.Warn("CreateReservation: dates conflict with reservation id=%d (%s - %s)",
				conflict.ID,
				conflict.StartDate.Format(domain.DateFormat),
				conflict.EndDate.Format(domain.DateFormat))
			return ErrDateConflict
		}

		// 3.5. Создаем резервацию
		reservation := &domain.Reservation{
			RoomID:    req.RoomID,
			GuestID:   req.GuestID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Status:    domain.StatusBooked,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.6. Помечаем комнату занятой (кэшированное производное состояние)
		if err := uc.roomRepo.UpdateState(txCtx, room.ID, domain.RoomOccupied); err != nil {
			uc.logger.Error("CreateReservation: failed to update room id=%d state: %v", room.ID, err)
			return fmt.Errorf("%w: failed to update room state: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		RoomID:    result.RoomID,
		GuestID:   result.GuestID,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Status:    string(result.Status),
		Nights:    result.Nights(),
		CreatedAt: result.CreatedAt,
	}, nil
}
