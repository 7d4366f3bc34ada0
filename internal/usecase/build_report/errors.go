package build_report

import "errors"

var (
	// ErrAccessDenied возвращается, когда отчёт запрашивает не сотрудник
	ErrAccessDenied = errors.New("build_report: access denied")

	// ErrInvalidInput возвращается при некорректном фильтре статуса или коттеджа и слишком длинном окне
	ErrInvalidInput = errors.New("build_report: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_report: internal error")
)
