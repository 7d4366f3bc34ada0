package reschedule_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда бронь чужая, а пользователь не сотрудник
	ErrAccessDenied = errors.New("reschedule_reservation: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
