package domain

import "errors"

// Виды ошибок бизнес-правил. Ошибки конкретных пакетов оборачивают один из них,
// чтобы транспортный слой мог сопоставить их с кодом ответа.
var (
	// ErrValidation нарушение инварианта (даты, вместимость, пересечение броней)
	ErrValidation = errors.New("validation error")

	// ErrConflict конфликт уникальности (повторный счёт на бронь)
	ErrConflict = errors.New("conflict")

	// ErrNotFound запрошенная сущность отсутствует
	ErrNotFound = errors.New("not found")
)
