package issue_invoice

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
	"github.com/kesamokki/booking-service/pkg/clock"
	"github.com/kesamokki/booking-service/pkg/ptr"
)

var (
	today = time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	staff = domain.Actor{UserID: 1, Staff: true}
)

type fixture struct {
	reservations *mockReservationRepo
	invoices     *mockInvoiceRepo
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{reservations: new(mockReservationRepo), invoices: new(mockInvoiceRepo)}
	f.uc = NewUseCase(f.reservations, f.invoices, inlineTx{}, clock.Fixed{At: today}, domain.DefaultInvoiceDueIn, nopLogger{})
	return f
}

func reservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{ID: 5, CustomerID: 42, TotalPrice: decimal.RequireFromString("664.80"), Status: status}
}

// passThrough возвращает переданный в Create счёт с присвоенным ID
func passThrough(f *fixture, match func(inv *domain.Invoice) bool) {
	f.invoices.On("Create", mock.Anything, mock.MatchedBy(match)).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Invoice).ID = 77 }).
		Return(&domain.Invoice{}, nil).
		Once()
}

func TestUseCase_Execute_Defaults(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(nil, invoiceRepo.ErrInvoiceNotFound)
	f.invoices.On("NextNumber", mock.Anything).Return(int64(7), nil)

	var created *domain.Invoice
	f.invoices.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		created = inv
		return inv.Number == "INV-007" &&
			inv.BilledAt.Equal(today) &&
			inv.DueDate.Equal(today.AddDate(0, 0, 14)) &&
			inv.Amount.Equal(decimal.RequireFromString("664.80")) &&
			inv.Status == domain.InvoiceStatusPending
	})).Return(&domain.Invoice{
		ID: 77, ReservationID: 5, Number: "INV-007", BilledAt: today, DueDate: today.AddDate(0, 0, 14),
		Amount: decimal.RequireFromString("664.80"), Status: domain.InvoiceStatusPending,
	}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "INV-007", resp.Number)
	assert.Equal(t, "2026-08-03", resp.DueDate)
	assert.Equal(t, "664.80", resp.Amount)
	assert.False(t, resp.Overdue)
	f.invoices.AssertExpectations(t)
}

func TestUseCase_Execute_ExplicitValues(t *testing.T) {
	f := newFixture()
	billed := today.AddDate(0, 0, -3)
	due := today.AddDate(0, 0, 30)

	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusCompleted), nil)
	f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(nil, invoiceRepo.ErrInvoiceNotFound)
	f.invoices.On("NextNumber", mock.Anything).Return(int64(1042), nil)
	passThrough(f, func(inv *domain.Invoice) bool {
		return inv.Number == "INV-1042" && inv.BilledAt.Equal(billed) && inv.DueDate.Equal(due) &&
			inv.Amount.Equal(decimal.NewFromInt(600)) && inv.Notes == "discount"
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor:         staff,
		ReservationID: 5,
		BilledAt:      &billed,
		DueDate:       &due,
		Amount:        ptr.Ptr(decimal.NewFromInt(600)),
		Notes:         "discount",
	})
	require.NoError(t, err)
	f.invoices.AssertExpectations(t)
}

func TestUseCase_Execute_AlreadyInvoiced(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(&domain.Invoice{ID: 1, Number: "INV-001"}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5})
	assert.ErrorIs(t, err, domain.ErrInvoiceExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	f.invoices.AssertNotCalled(t, "NextNumber", mock.Anything)
}

func TestUseCase_Execute_DuplicateRejectedByDatabase(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(nil, invoiceRepo.ErrInvoiceNotFound)
	f.invoices.On("NextNumber", mock.Anything).Return(int64(8), nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil, invoiceRepo.ErrInvoiceExists)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5})
	assert.ErrorIs(t, err, domain.ErrInvoiceExists)
}

func TestUseCase_Execute_NotBillable(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.ReservationStatusPending, domain.ReservationStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(status), nil)
			f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(nil, invoiceRepo.ErrInvoiceNotFound)

			_, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5})
			assert.ErrorIs(t, err, domain.ErrReservationNotBillable)
			f.invoices.AssertNotCalled(t, "NextNumber", mock.Anything)
		})
	}
}

func TestUseCase_Execute_DueBeforeBilled(t *testing.T) {
	f := newFixture()
	due := today.AddDate(0, 0, -1)

	f.reservations.On("GetByID", mock.Anything, int64(5)).Return(reservation(domain.ReservationStatusConfirmed), nil)
	f.invoices.On("GetByReservationID", mock.Anything, int64(5)).Return(nil, invoiceRepo.ErrInvoiceNotFound)
	f.invoices.On("NextNumber", mock.Anything).Return(int64(9), nil)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5, DueDate: &due})
	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	t.Run("not staff", func(t *testing.T) {
		_, err := newFixture().uc.Execute(context.Background(), &Request{Actor: domain.Actor{UserID: 42}, ReservationID: 5})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reservation not found", func(t *testing.T) {
		f := newFixture()
		f.reservations.On("GetByID", mock.Anything, int64(5)).Return(nil, reservationRepo.ErrReservationNotFound)

		_, err := f.uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("notes too long", func(t *testing.T) {
		notes := make([]rune, domain.MaxNotesLength+1)
		for i := range notes {
			notes[i] = 'a'
		}

		_, err := newFixture().uc.Execute(context.Background(), &Request{Actor: staff, ReservationID: 5, Notes: string(notes)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
