package cottages

import "errors"

var (
	// ErrCottageNotFound возвращается, когда коттедж не найден или скрыт из каталога
	ErrCottageNotFound = errors.New("cottage not found")

	// ErrAccessDenied возвращается, когда изменять каталог пытается не сотрудник
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных данных коттеджа
	ErrInvalidInput = errors.New("invalid cottage data")

	// ErrSlugTaken возвращается, когда явно указанный slug уже занят
	ErrSlugTaken = errors.New("slug already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cottages service: internal error")
)
