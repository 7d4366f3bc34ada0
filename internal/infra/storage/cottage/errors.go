package cottage

import "errors"

var (
	// ErrCottageNotFound возвращается, когда коттедж не найден
	ErrCottageNotFound = errors.New("cottage.repository: cottage not found")

	// ErrSlugTaken возвращается при нарушении уникальности slug
	ErrSlugTaken = errors.New("cottage.repository: slug already taken")

	// ErrDuplicateImageOrder возвращается, когда у двух изображений коттеджа одинаковый порядок
	ErrDuplicateImageOrder = errors.New("cottage.repository: duplicate image order")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cottage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cottage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cottage.repository: failed to scan row")
)
