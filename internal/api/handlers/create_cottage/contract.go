package create_cottage

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

type CottageService interface {
	Create(ctx context.Context, actor domain.Actor, in *models.CottageInput) (*models.CottageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
