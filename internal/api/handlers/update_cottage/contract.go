package update_cottage

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

type CottageService interface {
	Update(ctx context.Context, actor domain.Actor, id int64, in *models.CottageInput) (*models.CottageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
