package get_cottage

import (
	"context"

	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

type CottageService interface {
	GetBySlug(ctx context.Context, slug string) (*models.CottageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
