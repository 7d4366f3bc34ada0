package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kesamokki/booking-service/internal/domain"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	"github.com/kesamokki/booking-service/internal/service/invoices/models"
	"github.com/kesamokki/booking-service/pkg/clock"
	"github.com/kesamokki/booking-service/pkg/ptr"
)

var (
	now   = time.Date(2026, 7, 20, 9, 30, 0, 0, time.UTC)
	today = time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	owner = domain.Actor{UserID: 42}
	other = domain.Actor{UserID: 43}
	staff = domain.Actor{UserID: 1, Staff: true}
)

type fixture struct {
	invoices     *mockInvoiceRepo
	reservations *mockReservationRepo
	cottages     *mockCottageRepo
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		invoices:     new(mockInvoiceRepo),
		reservations: new(mockReservationRepo),
		cottages:     new(mockCottageRepo),
	}
	f.svc = NewService(f.invoices, f.reservations, f.cottages, inlineTx{}, clock.Fixed{At: now}, nopLogger{})
	return f
}

func invoice(status domain.InvoiceStatus) *domain.Invoice {
	return &domain.Invoice{
		ID:            11,
		ReservationID: 5,
		Number:        "INV-007",
		BilledAt:      today.AddDate(0, 0, -20),
		DueDate:       today.AddDate(0, 0, -6),
		Amount:        decimal.RequireFromString("664.80"),
		Status:        status,
	}
}

func reservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         5,
		CottageID:  7,
		CustomerID: owner.UserID,
		Customer:   domain.CustomerSnapshot{FullName: "Aino Virtanen", Email: "aino@example.fi"},
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
		Guests:     3,
		TotalPrice: decimal.RequireFromString("664.80"),
		Status:     domain.ReservationStatusCompleted,
	}
}

func TestService_MarkPaid(t *testing.T) {
	f := newFixture()
	f.invoices.On("GetByID", mock.Anything, int64(11)).Return(invoice(domain.InvoiceStatusPending), nil)
	f.invoices.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.Status == domain.InvoiceStatusPaid && inv.PaidAt != nil && inv.PaidAt.Equal(now)
	})).Return(nil)

	resp, err := f.svc.MarkPaid(context.Background(), staff, 11)
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.Status)
	assert.False(t, resp.Overdue)
	require.NotNil(t, resp.PaidAt)
	f.invoices.AssertExpectations(t)
}

func TestService_MarkPaid_Twice(t *testing.T) {
	f := newFixture()
	f.invoices.On("GetByID", mock.Anything, int64(11)).Return(invoice(domain.InvoiceStatusPaid), nil)

	_, err := f.svc.MarkPaid(context.Background(), staff, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	f.invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestService_MarkPaid_RequiresStaff(t *testing.T) {
	_, err := newFixture().svc.MarkPaid(context.Background(), owner, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel(t *testing.T) {
	f := newFixture()
	f.invoices.On("GetByID", mock.Anything, int64(11)).Return(invoice(domain.InvoiceStatusPending), nil)
	f.invoices.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.Cancel(context.Background(), staff, 11)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Nil(t, resp.PaidAt)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture()
	f.invoices.On("GetByID", mock.Anything, int64(11)).Return(invoice(domain.InvoiceStatusPending), nil)
	f.invoices.On("GetByID", mock.Anything, int64(12)).Return(nil, invoiceRepo.ErrInvoiceNotFound)
	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(), nil)

	resp, err := f.svc.GetByID(context.Background(), owner, 11)
	require.NoError(t, err)
	assert.Equal(t, "INV-007", resp.Number)
	assert.Equal(t, "664.80", resp.Amount)
	assert.True(t, resp.Overdue)

	_, err = f.svc.GetByID(context.Background(), other, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(context.Background(), owner, 12)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestService_List_Overdue(t *testing.T) {
	f := newFixture()
	f.invoices.On("List", mock.Anything, mock.MatchedBy(func(filter domain.InvoicesFilter) bool {
		return filter.OverdueAt != nil && filter.OverdueAt.Equal(today) &&
			filter.Status == nil &&
			filter.CustomerID != nil && *filter.CustomerID == owner.UserID
	})).Return([]*domain.Invoice{invoice(domain.InvoiceStatusPending)}, nil)
	f.invoices.On("Counts", mock.Anything, mock.Anything, today).
		Return(domain.InvoiceCounts{Pending: 2, Paid: 1, Overdue: 1}, nil)

	resp, err := f.svc.List(context.Background(), owner, &models.ListRequest{Status: ptr.Ptr("overdue")})
	require.NoError(t, err)

	assert.Len(t, resp.Invoices, 1)
	assert.Equal(t, models.CountsResponse{Pending: 2, Paid: 1, Overdue: 1}, resp.Counts)
	f.invoices.AssertExpectations(t)
}

func TestService_List_StaffStatusFilter(t *testing.T) {
	f := newFixture()
	f.invoices.On("List", mock.Anything, mock.MatchedBy(func(filter domain.InvoicesFilter) bool {
		return filter.CustomerID == nil && filter.Status != nil && *filter.Status == domain.InvoiceStatusPaid
	})).Return([]*domain.Invoice{}, nil)
	f.invoices.On("Counts", mock.Anything, (*int64)(nil), today).Return(domain.InvoiceCounts{}, nil)

	resp, err := f.svc.List(context.Background(), staff, &models.ListRequest{Status: ptr.Ptr("paid")})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)
}

func TestService_List_InvalidStatus(t *testing.T) {
	_, err := newFixture().svc.List(context.Background(), staff, &models.ListRequest{Status: ptr.Ptr("late")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Print(t *testing.T) {
	f := newFixture()
	f.invoices.On("GetByID", mock.Anything, int64(11)).Return(invoice(domain.InvoiceStatusPending), nil)
	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(), nil)
	f.cottages.On("GetByID", mock.Anything, int64(7)).Return(&domain.Cottage{
		ID:          7,
		Name:        "Rantamökki",
		Location:    "Saimaa",
		BasePrice:   decimal.RequireFromString("89.90"),
		CleaningFee: decimal.RequireFromString("35.50"),
	}, nil)

	resp, err := f.svc.Print(context.Background(), owner, 11)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "7 nights × 89.90", resp.Items[0].Description)
	assert.Equal(t, "629.30", resp.Items[0].Total)
	assert.Equal(t, "35.50", resp.Items[1].Total)
	assert.Equal(t, "664.80", resp.Total)
	assert.Equal(t, "Aino Virtanen", resp.Customer.FullName)
	assert.Equal(t, "Rantamökki", resp.CottageName)
}
