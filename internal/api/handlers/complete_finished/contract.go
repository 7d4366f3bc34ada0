package complete_finished

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	CompleteFinished(ctx context.Context, actor domain.Actor) (*models.CompleteFinishedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
