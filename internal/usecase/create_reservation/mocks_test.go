package create_reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kesamokki/booking-service/internal/domain"
	"github.com/kesamokki/booking-service/internal/integrations/customerservice"
)

type mockCottageRepo struct {
	mock.Mock
}

func (m *mockCottageRepo) GetByID(ctx context.Context, id int64) (*domain.Cottage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cottage), args.Error(1)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindOverlapping(ctx context.Context, cottageID int64, start, end time.Time, excludeID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, cottageID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type mockCustomerClient struct {
	mock.Mock
}

func (m *mockCustomerClient) GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*customerservice.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerservice.Customer), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
