package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда счет плана счетов не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrCodeTaken возвращается при попытке создать счет с занятым кодом
	ErrCodeTaken = errors.New("account.repository: account code already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
