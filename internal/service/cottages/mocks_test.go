package cottages

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kesamokki/booking-service/internal/domain"
)

type mockCottageRepo struct {
	mock.Mock
}

func (m *mockCottageRepo) Create(ctx context.Context, c *domain.Cottage) (*domain.Cottage, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cottage), args.Error(1)
}

func (m *mockCottageRepo) Update(ctx context.Context, c *domain.Cottage) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCottageRepo) GetByID(ctx context.Context, id int64) (*domain.Cottage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cottage), args.Error(1)
}

func (m *mockCottageRepo) GetBySlug(ctx context.Context, slug string) (*domain.Cottage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cottage), args.Error(1)
}

func (m *mockCottageRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCottageRepo) List(ctx context.Context, filter domain.CottagesFilter) ([]*domain.Cottage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Cottage), args.Error(1)
}

// inlineTx выполняет fn без транзакции
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
