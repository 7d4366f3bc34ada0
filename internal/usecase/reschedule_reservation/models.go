package reschedule_reservation

import (
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// Request модель запроса на изменение дат брони
type Request struct {
	Actor         domain.Actor
	ReservationID int64
	StartDate     time.Time
	EndDate       time.Time
	Guests        *int // nil - оставить текущее количество
}
