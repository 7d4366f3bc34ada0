package build_report

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kesamokki/booking-service/internal/domain"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invoice), args.Error(1)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) ListOccupying(ctx context.Context, from, to time.Time, cottageID *int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, from, to, cottageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type mockCottageRepo struct {
	mock.Mock
}

func (m *mockCottageRepo) List(ctx context.Context, filter domain.CottagesFilter) ([]*domain.Cottage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Cottage), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
