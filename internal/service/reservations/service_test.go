package reservations

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
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	"github.com/kesamokki/booking-service/internal/service/reservations/models"
	"github.com/kesamokki/booking-service/pkg/ptr"
)

var (
	today = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	owner = domain.Actor{UserID: 42}
	other = domain.Actor{UserID: 43}
	staff = domain.Actor{UserID: 1, Staff: true}
)

// newService собирает сервис для броней без счетов
func newService(repo *mockReservationRepo) *Service {
	invoices := new(mockInvoiceRepo)
	invoices.On("GetByReservationID", mock.Anything, mock.Anything).Return(nil, invoiceRepo.ErrInvoiceNotFound).Maybe()
	return NewService(repo, invoices, inlineTx{}, fixedToday(today), nopLogger{})
}

func reservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         5,
		CottageID:  7,
		CustomerID: owner.UserID,
		StartDate:  today.AddDate(0, 0, 10),
		EndDate:    today.AddDate(0, 0, 12),
		Guests:     2,
		TotalPrice: decimal.NewFromInt(250),
		Status:     status,
	}
}

func TestService_Cancel_ByOwner(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationStatusCancelled).Return(nil)

	resp, err := newService(repo).Cancel(context.Background(), owner, 5)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "250.00", resp.TotalPrice, "cancellation keeps the price")
	repo.AssertExpectations(t)
}

func TestService_Cancel_CancelsPendingInvoice(t *testing.T) {
	repo, invoices := new(mockReservationRepo), new(mockInvoiceRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationStatusCancelled).Return(nil)
	invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(&domain.Invoice{
		ID: 11, ReservationID: 5, Number: "INV-011", Amount: decimal.NewFromInt(250), Status: domain.InvoiceStatusPending,
	}, nil)
	invoices.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.ID == 11 && inv.Status == domain.InvoiceStatusCancelled
	})).Return(nil)

	resp, err := NewService(repo, invoices, inlineTx{}, fixedToday(today), nopLogger{}).Cancel(context.Background(), owner, 5)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	invoices.AssertExpectations(t)
}

func TestService_Cancel_KeepsPaidInvoice(t *testing.T) {
	repo, invoices := new(mockReservationRepo), new(mockInvoiceRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationStatusCancelled).Return(nil)
	invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(&domain.Invoice{
		ID: 11, ReservationID: 5, Number: "INV-011", Status: domain.InvoiceStatusPaid,
	}, nil)

	_, err := NewService(repo, invoices, inlineTx{}, fixedToday(today), nopLogger{}).Cancel(context.Background(), owner, 5)
	require.NoError(t, err)

	invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestService_Cancel_OtherCustomerDenied(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusPending), nil)

	_, err := newService(repo).Cancel(context.Background(), other, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_StaffAllowed(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationStatusCancelled).Return(nil)

	_, err := newService(repo).Cancel(context.Background(), staff, 5)
	require.NoError(t, err)
}

func TestService_Cancel_FinalStatusesRejected(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.ReservationStatusCancelled, domain.ReservationStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			repo := new(mockReservationRepo)
			repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(status), nil)

			_, err := newService(repo).Cancel(context.Background(), owner, 5)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestService_Confirm(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationStatusConfirmed).Return(nil)

	resp, err := newService(repo).Confirm(context.Background(), staff, 5)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_Confirm_RequiresStaff(t *testing.T) {
	_, err := newService(new(mockReservationRepo)).Confirm(context.Background(), owner, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusPending), nil)
	repo.On("GetByID", mock.Anything, int64(6)).Return(nil, reservationRepo.ErrReservationNotFound)

	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), owner, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, "2026-07-11", resp.StartDate)

	_, err = svc.GetByID(context.Background(), other, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), owner, 6)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_List_CustomerScopedToSelf(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == owner.UserID &&
			f.Status != nil && *f.Status == domain.ReservationStatusConfirmed
	})).Return([]*domain.Reservation{reservation(domain.ReservationStatusConfirmed)}, nil)

	resp, err := newService(repo).List(context.Background(), owner, &models.ListRequest{
		CustomerID: ptr.Ptr(int64(99)),
		Status:     ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
	repo.AssertExpectations(t)
}

func TestService_List_InvalidStatus(t *testing.T) {
	_, err := newService(new(mockReservationRepo)).List(context.Background(), staff, &models.ListRequest{Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CompleteFinished(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("CompleteFinished", mock.Anything, today).Return(int64(4), nil)

	resp, err := newService(repo).CompleteFinished(context.Background(), staff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Completed)

	_, err = newService(repo).CompleteFinished(context.Background(), owner)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
