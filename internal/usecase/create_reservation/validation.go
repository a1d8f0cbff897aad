package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestID == "" {
		return fmt.Errorf("%w: guestID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет, что диапазон дат непустой (start строго раньше end)
// Резервация на ноль ночей не имеет смысла
func validateRange(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidRange
	}
	return nil
}

// findDateConflict ищет активную резервацию, пересекающуюся с запрошенным
// полуинтервалом [start, end). Выезд и заезд в один день конфликтом не считаются
func findDateConflict(reservations []*domain.Reservation, start, end time.Time) *domain.Reservation {
	for _, reservation := range reservations {
		if !reservation.IsBooked() {
			continue
		}
		if reservation.Overlaps(start, end) {
			return reservation
		}
	}
	return nil
}
