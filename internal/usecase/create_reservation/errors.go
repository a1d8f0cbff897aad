package create_reservation

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат (start >= end)
	ErrInvalidRange = errors.New("create_reservation: invalid date range")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomUnavailable возвращается, когда комната недоступна для бронирования
	ErrRoomUnavailable = errors.New("create_reservation: room is not available")

	// ErrDateConflict возвращается, когда даты пересекаются с существующей активной резервацией
	ErrDateConflict = errors.New("create_reservation: dates conflict with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
