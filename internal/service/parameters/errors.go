package parameters

import "errors"

var (
	// ErrParameterNotFound возвращается, когда параметр не найден
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrKeyTaken возвращается, когда ключ параметра уже занят
	ErrKeyTaken = errors.New("parameter key already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
