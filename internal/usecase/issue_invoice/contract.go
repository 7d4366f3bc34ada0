package issue_invoice

import (
	"context"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	NextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
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
