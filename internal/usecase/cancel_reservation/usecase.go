package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

// UseCase use case для отмены резервации
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

// Execute выполняет use case отмены резервации
// В той же транзакции пересчитывает кэшированное состояние комнаты:
// если активных резерваций не осталось, комната снова становится доступной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: reservation=%d", req.ReservationID)

	if req.ReservationID <= 0 {
		uc.logger.Warn("CancelReservation: invalid reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем резервацию с блокировкой (FOR UPDATE)
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Проверяем, что резервацию еще можно отменить
		if !reservation.CanBeCancelled() {
			uc.logger.Warn("CancelReservation: reservation id=%d is already cancelled", reservation.ID)
			return ErrAlreadyCancelled
		}

		// 3. Переводим резервацию в терминальный статус
		if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelReservation: failed to update status for id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to update reservation status: %v", ErrInternal, err)
		}

		// 4. Пересчитываем состояние комнаты по оставшимся активным резервациям
		filter := domain.RoomReservationsFilter{
			RoomID: reservation.RoomID,
			Status: ptr.Ptr(domain.StatusBooked),
		}

		remaining, err := uc.reservationRepo.ListByRoom(txCtx, filter)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to get reservations for room id=%d: %v",
				reservation.RoomID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		state := domain.RoomAvailable
		if len(remaining) > 0 {
			state = domain.RoomOccupied
		}

		if err := uc.roomRepo.UpdateState(txCtx, reservation.RoomID, state); err != nil {
			uc.logger.Error("CancelReservation: failed to update room id=%d state: %v",
				reservation.RoomID, err)
			return fmt.Errorf("%w: failed to update room state: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusCancelled
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		RoomID:    result.RoomID,
		GuestID:   result.GuestID,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
