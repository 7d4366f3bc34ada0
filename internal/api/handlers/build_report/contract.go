package build_report

import (
	"context"

	buildReport "github.com/kesamokki/booking-service/internal/usecase/build_report"
)

type BuildReportUseCase interface {
	Execute(ctx context.Context, req *buildReport.Request) (*buildReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
