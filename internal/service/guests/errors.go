package guests

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrDocumentTaken возвращается, когда документ уже зарегистрирован
	ErrDocumentTaken = errors.New("document number already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
