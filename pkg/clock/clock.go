// Package clock текущее время и календарная дата в часовом поясе бизнеса
package clock

import "time"

// Clock реальные часы
type Clock struct {
	loc *time.Location
}

// New создает часы для часового пояса loc (nil - UTC)
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

// Now текущий момент
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today сегодняшняя дата в часовом поясе бизнеса как полночь UTC
func (c *Clock) Today() time.Time {
	return DateIn(time.Now(), c.loc)
}

// DateIn календарная дата момента t в часовом поясе loc как полночь UTC
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed часы, всегда возвращающие один и тот же момент
type Fixed struct {
	At  time.Time
	Loc *time.Location
}

// Now возвращает At
func (f Fixed) Now() time.Time {
	return f.At
}

// Today дата момента At
func (f Fixed) Today() time.Time {
	loc := f.Loc
	if loc == nil {
		loc = time.UTC
	}
	return DateIn(f.At, loc)
}
