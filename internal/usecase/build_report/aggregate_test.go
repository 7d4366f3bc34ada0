package build_report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesamokki/booking-service/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWindow(t *testing.T) {
	today := date("2026-10-15")

	tests := []struct {
		name       string
		start, end string
		wantFrom   string
		wantUntil  string
	}{
		{"defaults to 12 full months", "", "", "2025-10-01", "2026-10-01"},
		{"snaps to months", "2026-01-15", "2026-03-02", "2026-01-01", "2026-04-01"},
		{"malformed falls back", "15/01/2026", "soon", "2025-10-01", "2026-10-01"},
		{"only start", "2026-05-31", "", "2026-05-01", "2026-10-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, until := Window(today, tt.start, tt.end)
			assert.Equal(t, date(tt.wantFrom), from)
			assert.Equal(t, date(tt.wantUntil), until)
		})
	}
}

func TestMonthSpan(t *testing.T) {
	assert.Equal(t, 12, MonthSpan(date("2025-10-01"), date("2026-10-01")))
	assert.Equal(t, 1, MonthSpan(date("2025-12-01"), date("2026-01-01")))
	assert.Equal(t, MaxWindowMonths, MonthSpan(date("2021-01-01"), date("2026-01-01")))
	assert.Equal(t, 0, MonthSpan(date("2026-02-01"), date("2026-02-01")))
}

// Начало окна округляется до первого числа месяца, поэтому счёт,
// выставленный в том же месяце до даты start, попадает в выручку
func TestRevenue_MidMonthStartCountsWholeMonth(t *testing.T) {
	from, until := Window(date("2026-10-15"), "2026-03-20", "2026-03-31")
	require.Equal(t, date("2026-03-01"), from)

	months := Months(from, until)
	invoices := []*domain.Invoice{
		{BilledAt: date("2026-03-05"), Amount: decimal.RequireFromString("120.00")},
		{BilledAt: date("2026-03-25"), Amount: decimal.RequireFromString("80.00")},
	}

	got := Revenue(months, invoices)
	require.Len(t, got, 1)
	assert.Equal(t, "200.00", got[0].StringFixed(2))
}

func TestMonths(t *testing.T) {
	months := Months(date("2025-11-01"), date("2026-02-01"))
	require.Len(t, months, 3)
	assert.Equal(t, []string{"November 2025", "December 2025", "January 2026"}, MonthLabels(months))

	assert.Empty(t, Months(date("2026-02-01"), date("2026-02-01")))
}

func TestRevenue_ZeroFilled(t *testing.T) {
	months := Months(date("2026-01-01"), date("2026-04-01"))
	invoices := []*domain.Invoice{
		{BilledAt: date("2026-01-05"), Amount: decimal.RequireFromString("250.00")},
		{BilledAt: date("2026-01-31"), Amount: decimal.RequireFromString("664.80")},
		{BilledAt: date("2026-03-01"), Amount: decimal.RequireFromString("100.10")},
		// вне окна
		{BilledAt: date("2026-04-01"), Amount: decimal.RequireFromString("999.00")},
	}

	got := Revenue(months, invoices)
	require.Len(t, got, 3)
	assert.Equal(t, "914.80", got[0].StringFixed(2))
	assert.True(t, got[1].IsZero())
	assert.Equal(t, "100.10", got[2].StringFixed(2))
}

func TestOccupancy(t *testing.T) {
	months := Months(date("2026-06-01"), date("2026-08-01"))

	tests := []struct {
		name         string
		reservations []*domain.Reservation
		want         []float64
	}{
		{
			name: "clipped to month boundaries",
			reservations: []*domain.Reservation{
				{StartDate: date("2026-06-28"), EndDate: date("2026-07-03"), Status: domain.ReservationStatusConfirmed},
				{StartDate: date("2026-07-10"), EndDate: date("2026-07-17"), Status: domain.ReservationStatusCompleted},
			},
			// июнь: 3 из 30; июль: 2 + 7 из 31
			want: []float64{10.0, 29.0},
		},
		{
			name: "rounded to one decimal",
			reservations: []*domain.Reservation{
				{StartDate: date("2026-06-01"), EndDate: date("2026-06-03"), Status: domain.ReservationStatusPending},
				{StartDate: date("2026-07-31"), EndDate: date("2026-08-01"), Status: domain.ReservationStatusPending},
			},
			want: []float64{6.7, 3.2},
		},
		{
			name: "capped at days in month",
			reservations: []*domain.Reservation{
				{StartDate: date("2026-05-20"), EndDate: date("2026-07-01"), Status: domain.ReservationStatusCompleted},
				{StartDate: date("2026-06-10"), EndDate: date("2026-06-20"), Status: domain.ReservationStatusCompleted},
			},
			want: []float64{100.0, 0},
		},
		{
			name: "cancelled ignored",
			reservations: []*domain.Reservation{
				{StartDate: date("2026-06-01"), EndDate: date("2026-06-16"), Status: domain.ReservationStatusCancelled},
			},
			want: []float64{0, 0},
		},
		{
			name:         "no reservations",
			reservations: nil,
			want:         []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Occupancy(months, tt.reservations))
		})
	}
}

func TestColor(t *testing.T) {
	// md5("1") = c4ca42..., md5("7") = 8f14e4...
	assert.Equal(t, "rgb(221, 27, 91)", Color(1))
	assert.Equal(t, "rgb(168, 45, 53)", Color(7))
	assert.Equal(t, Color(12), Color(12))
}
