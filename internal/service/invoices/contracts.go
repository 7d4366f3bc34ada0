package invoices

import (
	"context"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error)
	Counts(ctx context.Context, customerID *int64, today time.Time) (domain.InvoiceCounts, error)
	UpdateStatus(ctx context.Context, inv *domain.Invoice) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// CottageRepository интерфейс репозитория коттеджей
type CottageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cottage, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider текущее время и дата в часовом поясе бизнеса
type TimeProvider interface {
	Now() time.Time
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
