package reschedule_reservation

import (
	"context"

	"github.com/kesamokki/booking-service/internal/service/reservations/models"
	rescheduleReservation "github.com/kesamokki/booking-service/internal/usecase/reschedule_reservation"
)

type RescheduleReservationUseCase interface {
	Execute(ctx context.Context, req *rescheduleReservation.Request) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
