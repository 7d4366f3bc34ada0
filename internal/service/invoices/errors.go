package invoices

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счёт не найден
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrAccessDenied возвращается, когда счёт выставлен на чужую бронь, а пользователь не сотрудник
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("invoices service: internal error")
)
