package accounts

import "errors"

var (
	// ErrAccountNotFound возвращается, когда счет плана не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrCodeTaken возвращается, когда код счета уже занят
	ErrCodeTaken = errors.New("account code already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
