package invoices

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kesamokki/booking-service/internal/domain"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) Counts(ctx context.Context, customerID *int64, today time.Time) (domain.InvoiceCounts, error) {
	args := m.Called(ctx, customerID, today)
	return args.Get(0).(domain.InvoiceCounts), args.Error(1)
}

func (m *mockInvoiceRepo) UpdateStatus(ctx context.Context, inv *domain.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

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

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
