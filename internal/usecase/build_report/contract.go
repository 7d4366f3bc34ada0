package build_report

import (
	"context"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ListOccupying(ctx context.Context, from, to time.Time, cottageID *int64) ([]*domain.Reservation, error)
}

// CottageRepository интерфейс репозитория коттеджей
type CottageRepository interface {
	List(ctx context.Context, filter domain.CottagesFilter) ([]*domain.Cottage, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
