package build_report

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kesamokki/booking-service/internal/domain"
)

const (
	// DefaultWindowMonths длина окна отчёта по умолчанию
	DefaultWindowMonths = 12

	// MaxWindowMonths наибольшая длина окна отчёта
	MaxWindowMonths = 60
)

// Window границы отчёта [from, until): from - первое число месяца start,
// until - первое число месяца, следующего за end
// Пустые или некорректные даты заменяются окном из 12 полных месяцев до текущего
func Window(today time.Time, start, end string) (from, until time.Time) {
	until = domain.FirstOfMonth(today)
	from = until.AddDate(0, -DefaultWindowMonths, 0)

	if start != "" {
		if t, err := time.Parse(domain.DateFormat, start); err == nil {
			from = domain.FirstOfMonth(t)
		}
	}
	if end != "" {
		if t, err := time.Parse(domain.DateFormat, end); err == nil {
			until = domain.FirstOfMonth(t).AddDate(0, 1, 0)
		}
	}

	return from, until
}

// MonthSpan количество месяцев в окне [from, until)
func MonthSpan(from, until time.Time) int {
	return (until.Year()-from.Year())*12 + int(until.Month()) - int(from.Month())
}

// Months первые числа месяцев окна [from, until)
func Months(from, until time.Time) []time.Time {
	var months []time.Time
	for m := domain.FirstOfMonth(from); m.Before(until); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// MonthLabels подписи месяцев: "January 2026"
func MonthLabels(months []time.Time) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Format(domain.MonthLabelFormat)
	}
	return labels
}

// Revenue суммирует счета по месяцу даты выставления; месяцы без счетов равны нулю
func Revenue(months []time.Time, invoices []*domain.Invoice) []decimal.Decimal {
	index := make(map[time.Time]int, len(months))
	sums := make([]decimal.Decimal, len(months))
	for i, m := range months {
		index[m] = i
		sums[i] = decimal.Zero
	}

	for _, inv := range invoices {
		if i, ok := index[domain.FirstOfMonth(inv.BilledAt)]; ok {
			sums[i] = sums[i].Add(inv.Amount)
		}
	}

	return sums
}

// Occupancy процент занятых ночей коттеджа по месяцам, округлённый до десятых
// Бронь [start, end) учитывается только ночами, попадающими в месяц;
// сумма ограничена числом дней месяца
func Occupancy(months []time.Time, reservations []*domain.Reservation) []float64 {
	rates := make([]float64, len(months))

	for i, m := range months {
		next := m.AddDate(0, 1, 0)
		days := domain.DaysInMonth(m)

		occupied := 0
		for _, r := range reservations {
			if r.Status == domain.ReservationStatusCancelled {
				continue
			}
			occupied += clippedNights(r.StartDate, r.EndDate, m, next)
		}
		if occupied > days {
			occupied = days
		}

		rate := decimal.NewFromInt(int64(occupied)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(days))).
			Round(1)
		rates[i] = rate.InexactFloat64()
	}

	return rates
}

func clippedNights(start, end, monthStart, monthEnd time.Time) int {
	if start.Before(monthStart) {
		start = monthStart
	}
	if end.After(monthEnd) {
		end = monthEnd
	}
	if !start.Before(end) {
		return 0
	}
	return domain.DaysBetween(start, end)
}

// Color стабильный цвет коттеджа на графике: первые три байта md5 от десятичного ID
func Color(cottageID int64) string {
	sum := md5.Sum([]byte(strconv.FormatInt(cottageID, 10)))
	return fmt.Sprintf("rgb(%d, %d, %d)", int(sum[0])%200+25, int(sum[1])%200+25, int(sum[2])%200+25)
}
