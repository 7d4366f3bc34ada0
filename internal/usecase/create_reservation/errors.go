package create_reservation

import "errors"

var (
	// ErrCottageNotFound возвращается, когда коттедж не найден
	ErrCottageNotFound = errors.New("create_reservation: cottage not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден в сервисе клиентов
	ErrCustomerNotFound = errors.New("create_reservation: customer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
