package reservations

import (
	"context"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	CompleteFinished(ctx context.Context, today time.Time) (int64, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, inv *domain.Invoice) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущей даты
type TimeProvider interface {
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
