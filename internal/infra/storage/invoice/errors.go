package invoice

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счёт не найден
	ErrInvoiceNotFound = errors.New("invoice.repository: invoice not found")

	// ErrInvoiceExists возвращается, когда на бронь уже выставлен счёт
	ErrInvoiceExists = errors.New("invoice.repository: invoice already exists for reservation")

	// ErrNumberTaken возвращается при повторе номера счёта
	ErrNumberTaken = errors.New("invoice.repository: invoice number already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("invoice.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("invoice.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("invoice.repository: failed to scan row")
)
