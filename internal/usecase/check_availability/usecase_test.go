package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kesamokki/booking-service/internal/domain"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
)

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func cottage() *domain.Cottage {
	return &domain.Cottage{
		ID:          7,
		Beds:        4,
		BasePrice:   decimal.RequireFromString("89.90"),
		CleaningFee: decimal.RequireFromString("35.50"),
		Active:      true,
	}
}

func TestUseCase_Execute_Available(t *testing.T) {
	cottages, reservations := new(mockCottageRepo), new(mockReservationRepo)
	cottages.On("GetByID", mock.Anything, int64(7)).Return(cottage(), nil)
	reservations.On("FindOverlapping", mock.Anything, int64(7), date("2026-07-10"), date("2026-07-17"), int64(0)).
		Return([]*domain.Reservation{
			{ID: 1, StartDate: date("2026-07-17"), EndDate: date("2026-07-20"), Status: domain.ReservationStatusConfirmed},
		}, nil)

	resp, err := NewUseCase(cottages, reservations, nopLogger{}).Execute(context.Background(), &Request{
		CottageID: 7, StartDate: "2026-07-10", EndDate: "2026-07-17",
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 7, *resp.Nights)
	assert.Equal(t, "629.30", *resp.BasePriceTotal)
	assert.Equal(t, "35.50", *resp.CleaningFee)
	assert.Equal(t, "664.80", *resp.TotalPrice)
}

func TestUseCase_Execute_Booked(t *testing.T) {
	cottages, reservations := new(mockCottageRepo), new(mockReservationRepo)
	cottages.On("GetByID", mock.Anything, int64(7)).Return(cottage(), nil)
	reservations.On("FindOverlapping", mock.Anything, int64(7), mock.Anything, mock.Anything, int64(0)).
		Return([]*domain.Reservation{
			{ID: 1, StartDate: date("2026-07-12"), EndDate: date("2026-07-14"), Status: domain.ReservationStatusPending},
		}, nil)

	resp, err := NewUseCase(cottages, reservations, nopLogger{}).Execute(context.Background(), &Request{
		CottageID: 7, StartDate: "2026-07-10", EndDate: "2026-07-17",
	})
	require.NoError(t, err)
	assert.Equal(t, &Response{Available: false}, resp)
}

func TestUseCase_Execute_UnavailableWithoutError(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"malformed start", Request{CottageID: 7, StartDate: "10.07.2026", EndDate: "2026-07-17"}},
		{"missing end", Request{CottageID: 7, StartDate: "2026-07-10"}},
		{"inverted", Request{CottageID: 7, StartDate: "2026-07-17", EndDate: "2026-07-10"}},
		{"same day", Request{CottageID: 7, StartDate: "2026-07-10", EndDate: "2026-07-10"}},
		{"no cottage", Request{StartDate: "2026-07-10", EndDate: "2026-07-17"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cottages := new(mockCottageRepo)

			resp, err := NewUseCase(cottages, new(mockReservationRepo), nopLogger{}).Execute(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.False(t, resp.Available)
			cottages.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_UnknownOrInactiveCottage(t *testing.T) {
	inactive := cottage()
	inactive.Active = false

	cottages := new(mockCottageRepo)
	cottages.On("GetByID", mock.Anything, int64(7)).Return(inactive, nil)
	cottages.On("GetByID", mock.Anything, int64(8)).Return(nil, cottageRepo.ErrCottageNotFound)

	uc := NewUseCase(cottages, new(mockReservationRepo), nopLogger{})

	for _, id := range []int64{7, 8} {
		resp, err := uc.Execute(context.Background(), &Request{CottageID: id, StartDate: "2026-07-10", EndDate: "2026-07-17"})
		require.NoError(t, err)
		assert.False(t, resp.Available)
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	cottages := new(mockCottageRepo)
	cottages.On("GetByID", mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))

	_, err := NewUseCase(cottages, new(mockReservationRepo), nopLogger{}).Execute(context.Background(), &Request{
		CottageID: 7, StartDate: "2026-07-10", EndDate: "2026-07-17",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
