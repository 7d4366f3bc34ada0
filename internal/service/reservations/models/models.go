package models

import (
	"errors"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListRequest фильтр списка броней
// Клиент видит только свои брони; сотрудник - все, с фильтром по клиенту
type ListRequest struct {
	CustomerID *int64
	CottageID  *int64
	Status     *string
}

// Response модели

// CustomerResponse контактные данные клиента на момент бронирования
type CustomerResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ReservationResponse бронь
type ReservationResponse struct {
	ID         int64            `json:"id"`
	CottageID  int64            `json:"cottage_id"`
	CustomerID int64            `json:"customer_id"`
	Customer   CustomerResponse `json:"customer"`
	StartDate  string           `json:"start_date"` // "2026-07-10"
	EndDate    string           `json:"end_date"`   // дата выезда, не включается
	Nights     int              `json:"nights"`
	Guests     int              `json:"guests"`
	TotalPrice string           `json:"total_price"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// CompleteFinishedResponse результат завершения прошедших броней
type CompleteFinishedResponse struct {
	Completed int64 `json:"completed"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		CottageID:  r.CottageID,
		CustomerID: r.CustomerID,
		Customer: CustomerResponse{
			FullName: r.Customer.FullName,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Address:  r.Customer.Address,
		},
		StartDate:  r.StartDate.Format(domain.DateFormat),
		EndDate:    r.EndDate.Format(domain.DateFormat),
		Nights:     r.Nights(),
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice.StringFixed(2),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}

	for _, r := range list {
		if rr := FromDomainReservation(r); rr != nil {
			resp.Reservations = append(resp.Reservations, *rr)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
