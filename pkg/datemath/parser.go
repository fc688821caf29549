package datemath

import (
	"fmt"
	"time"
)

// Parser resolves calendar arithmetic in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// StartOfDay returns midnight at the start of t's calendar day in the
// parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day containing t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// SameDay reports whether a and b fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	a, b = a.In(p.location), b.In(p.location)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// BeforeDay reports whether a's calendar day is strictly before b's in the
// parser's timezone.
func (p *Parser) BeforeDay(a, b time.Time) bool {
	return p.StartOfDay(a).Before(p.StartOfDay(b))
}

// PeriodRange resolves a named period to an inclusive [start, end] window
// relative to base. Weeks run Monday through Sunday.
func (p *Parser) PeriodRange(period Period, base time.Time) (time.Time, time.Time, error) {
	base = base.In(p.location)

	switch period {
	case PeriodToday:
		return p.StartOfDay(base), p.EndOfDay(base), nil
	case PeriodYesterday:
		y := base.AddDate(0, 0, -1)
		return p.StartOfDay(y), p.EndOfDay(y), nil
	case PeriodThisWeek:
		start := p.startOfWeek(base)
		return start, p.EndOfDay(start.AddDate(0, 0, 6)), nil
	case PeriodLastWeek:
		start := p.startOfWeek(base).AddDate(0, 0, -7)
		return start, p.EndOfDay(start.AddDate(0, 0, 6)), nil
	case PeriodThisMonth:
		start := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, p.location)
		return start, p.EndOfDay(start.AddDate(0, 1, -1)), nil
	case PeriodLastMonth:
		start := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, -1, 0)
		return start, p.EndOfDay(start.AddDate(0, 1, -1)), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unknown period: %q", period)
}

// startOfWeek returns midnight of the Monday of t's week.
func (p *Parser) startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return p.StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}
