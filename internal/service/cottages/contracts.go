package cottages

import (
	"context"

	"github.com/kesamokki/booking-service/internal/domain"
)

// CottageRepository интерфейс репозитория коттеджей
type CottageRepository interface {
	Create(ctx context.Context, c *domain.Cottage) (*domain.Cottage, error)
	Update(ctx context.Context, c *domain.Cottage) error
	GetByID(ctx context.Context, id int64) (*domain.Cottage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Cottage, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	List(ctx context.Context, filter domain.CottagesFilter) ([]*domain.Cottage, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
