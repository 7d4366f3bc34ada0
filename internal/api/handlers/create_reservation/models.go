package create_reservation

import (
	"fmt"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
	createReservation "github.com/kesamokki/booking-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CottageID  int64  `json:"cottage_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required"` // "2026-07-10"
	EndDate    string `json:"end_date" validate:"required"`   // дата выезда
	Guests     int    `json:"guests"`
	CustomerID *int64 `json:"customer_id,omitempty" validate:"omitempty,gt=0"` // только для сотрудников
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Клиент всегда бронирует на себя; сотрудник может указать клиента
func (r *CreateReservationRequest) ToUseCaseRequest(actor domain.Actor) (*createReservation.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}

	customerID := actor.UserID
	if actor.Staff && r.CustomerID != nil {
		customerID = *r.CustomerID
	}

	return &createReservation.Request{
		CustomerID: customerID,
		CottageID:  r.CottageID,
		StartDate:  start,
		EndDate:    end,
		Guests:     r.Guests,
	}, nil
}
