package issue_invoice

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("issue_invoice: reservation not found")

	// ErrAccessDenied возвращается, когда счёт пытается выставить не сотрудник
	ErrAccessDenied = errors.New("issue_invoice: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("issue_invoice: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("issue_invoice: internal error")
)
