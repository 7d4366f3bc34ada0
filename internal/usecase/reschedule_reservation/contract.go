package reschedule_reservation

import (
	"context"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// CottageRepository интерфейс репозитория коттеджей
type CottageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cottage, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, cottageID int64, start, end time.Time, excludeID int64) ([]*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider текущая дата в часовом поясе бизнеса
type TimeProvider interface {
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
