package guest

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest.repository: guest not found")

	// ErrDocumentTaken возвращается при попытке создать гостя с занятым номером документа
	ErrDocumentTaken = errors.New("guest.repository: document number already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guest.repository: failed to scan row")
)
