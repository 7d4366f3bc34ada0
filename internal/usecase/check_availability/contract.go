package check_availability

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
	FindOverlapping(ctx context.Context, cottageID int64, start, end time.Time, excludeID int64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
