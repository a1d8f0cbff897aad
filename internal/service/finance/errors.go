package finance

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация для дохода не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
