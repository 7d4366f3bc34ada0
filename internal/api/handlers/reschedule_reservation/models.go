package reschedule_reservation

import (
	"fmt"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
	rescheduleReservation "github.com/kesamokki/booking-service/internal/usecase/reschedule_reservation"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Guests    *int   `json:"guests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) (*rescheduleReservation.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}

	return &rescheduleReservation.Request{
		Actor:         actor,
		ReservationID: reservationID,
		StartDate:     start,
		EndDate:       end,
		Guests:        r.Guests,
	}, nil
}
