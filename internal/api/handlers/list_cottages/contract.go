package list_cottages

import (
	"context"

	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

type CottageService interface {
	List(ctx context.Context) (*models.CottageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
