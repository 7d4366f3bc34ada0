package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus статус брони
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled, ReservationStatusCompleted},
	ReservationStatusCancelled: nil,
	ReservationStatusCompleted: nil,
}

// IsValid статус входит в перечисление
func (s ReservationStatus) IsValid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

// CanTransitionTo допустим ли переход s -> next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive бронь занимает коттедж (pending или confirmed)
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Ошибки правил бронирования
var (
	ErrInvalidDateRange  = fmt.Errorf("%w: end date must be after start date", ErrValidation)
	ErrStartDateInPast   = fmt.Errorf("%w: reservations cannot start in the past", ErrValidation)
	ErrInvalidGuests     = fmt.Errorf("%w: number of guests must be at least %d", ErrValidation, MinGuests)
	ErrCapacityExceeded  = fmt.Errorf("%w: number of guests exceeds cottage capacity", ErrValidation)
	ErrCottageInactive   = fmt.Errorf("%w: cottage is not available for booking", ErrValidation)
	ErrOverlap           = fmt.Errorf("%w: the cottage is already booked for this period", ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: status transition is not allowed", ErrValidation)
)

// CustomerSnapshot контактные данные клиента на момент бронирования
type CustomerSnapshot struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

// Reservation бронь коттеджа на диапазон дат [StartDate, EndDate)
type Reservation struct {
	ID         int64
	CottageID  int64
	CustomerID int64
	Customer   CustomerSnapshot
	StartDate  time.Time
	EndDate    time.Time
	Guests     int
	TotalPrice decimal.Decimal
	Status     ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights количество ночей
func (r *Reservation) Nights() int {
	return DaysBetween(r.StartDate, r.EndDate)
}

// IsActive бронь участвует в проверке пересечений
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// CanBeCancelled отменить можно только pending или confirmed
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(ReservationStatusCancelled)
}

// CanBeRescheduled изменить даты можно только у активной брони
func (r *Reservation) CanBeRescheduled() bool {
	return r.IsActive()
}

// CanBeInvoiced счёт выставляется на подтверждённую или завершённую бронь
func (r *Reservation) CanBeInvoiced() bool {
	return r.Status == ReservationStatusConfirmed || r.Status == ReservationStatusCompleted
}

// OverlapsRange пересекается ли бронь с [start, end)
func (r *Reservation) OverlapsRange(start, end time.Time) bool {
	return Overlaps(r.StartDate, r.EndDate, start, end)
}

// Stay параметры проживания, проверяемые при каждой записи брони
type Stay struct {
	StartDate time.Time
	EndDate   time.Time
	Guests    int
}

// ValidateStay проверяет инварианты брони, не требующие обращения к хранилищу
// today - текущая дата в часовом поясе бизнеса
func ValidateStay(c *Cottage, stay Stay, today time.Time) error {
	if !DateOf(stay.StartDate).Before(DateOf(stay.EndDate)) {
		return ErrInvalidDateRange
	}
	if DateOf(stay.StartDate).Before(DateOf(today)) {
		return ErrStartDateInPast
	}
	if stay.Guests < MinGuests {
		return ErrInvalidGuests
	}
	if !c.CanHost(stay.Guests) {
		return fmt.Errorf("%w: %d guests, %d beds", ErrCapacityExceeded, stay.Guests, c.Beds)
	}
	return nil
}

// FindConflict возвращает первую активную бронь из existing, пересекающуюся с [start, end)
// Бронь с идентификатором excludeID (обновляемая) пропускается
func FindConflict(existing []*Reservation, start, end time.Time, excludeID int64) *Reservation {
	for _, r := range existing {
		if r.ID == excludeID && excludeID != 0 {
			continue
		}
		if r.IsActive() && r.OverlapsRange(start, end) {
			return r
		}
	}
	return nil
}

// NewReservation собирает новую бронь со статусом pending и рассчитанной стоимостью
func NewReservation(c *Cottage, customerID int64, customer CustomerSnapshot, stay Stay) *Reservation {
	start, end := DateOf(stay.StartDate), DateOf(stay.EndDate)
	price := CalculatePrice(c, start, end)

	return &Reservation{
		CottageID:  c.ID,
		CustomerID: customerID,
		Customer:   customer,
		StartDate:  start,
		EndDate:    end,
		Guests:     stay.Guests,
		TotalPrice: price.Total,
		Status:     ReservationStatusPending,
	}
}

// Reschedule переносит бронь на новые даты и пересчитывает стоимость
func (r *Reservation) Reschedule(c *Cottage, stay Stay) {
	r.StartDate = DateOf(stay.StartDate)
	r.EndDate = DateOf(stay.EndDate)
	r.Guests = stay.Guests
	r.TotalPrice = CalculatePrice(c, r.StartDate, r.EndDate).Total
}

// ReservationsFilter фильтр списка броней
type ReservationsFilter struct {
	CustomerID *int64
	CottageID  *int64
	Status     *ReservationStatus
}
