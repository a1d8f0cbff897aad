package parameter

import "errors"

var (
	// ErrParameterNotFound возвращается, когда параметр не найден
	ErrParameterNotFound = errors.New("parameter.repository: parameter not found")

	// ErrKeyTaken возвращается при попытке создать параметр с занятым ключом
	ErrKeyTaken = errors.New("parameter.repository: parameter key already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parameter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parameter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parameter.repository: failed to scan row")
)
