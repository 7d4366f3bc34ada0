package domain

import "time"

// DateOf возвращает календарную дату t в виде полуночи UTC
// Все даты броней и счетов хранятся в таком виде
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween количество суток между датами (end - start)
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours() / 24)
}

// Overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
// Бронь, заканчивающаяся в день заезда другой брони, пересечением не считается
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FirstOfMonth первое число месяца даты t
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth количество дней в месяце даты t
func DaysInMonth(t time.Time) int {
	first := FirstOfMonth(t)
	return DaysBetween(first, first.AddDate(0, 1, 0))
}
