package billing

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счет не найден
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrReservationNotFound возвращается, когда резервация для счета не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
