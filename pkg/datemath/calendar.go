package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Calendar fixes the time zone and first day of the week used for all
// day-level arithmetic. The zero value is UTC with weeks starting on Sunday;
// use DefaultCalendar or NewCalendar instead.
type Calendar struct {
	loc       *time.Location
	weekStart time.Weekday
}

// DefaultCalendar is UTC with Monday-first weeks.
var DefaultCalendar = Calendar{loc: time.UTC, weekStart: time.Monday}

// NewCalendar creates a Calendar for the IANA timezone (e.g. "Asia/Ho_Chi_Minh").
func NewCalendar(timezone string, weekStart time.Weekday) (Calendar, error) {
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return Calendar{}, fmt.Errorf("invalid week start %d", weekStart)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return Calendar{loc: loc, weekStart: weekStart}, nil
}

// ParseWeekday maps "monday", "mon", "Sunday", ... to a time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday: %q", s)
}

// Location returns the calendar's time zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// FirstWeekday returns the day weeks start on.
func (c Calendar) FirstWeekday() time.Weekday {
	return c.weekStart
}

// Date builds midnight of y-m-d in the calendar's zone. Out-of-range values normalize.
func (c Calendar) Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, c.Location())
}

// StartOfDay returns midnight at the start of t's day in the calendar's zone.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return c.Date(t.Year(), t.Month(), t.Day())
}

// EndOfDay returns the last instant of t's day.
func (c Calendar) EndOfDay(t time.Time) time.Time {
	return c.AddDays(t, 1).Add(-time.Nanosecond)
}

// AddDays returns the start of the day n calendar days after t's day.
// Unlike t.Add(24h*n) this stays on midnight across DST changes.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	t = t.In(c.Location())
	return c.Date(t.Year(), t.Month(), t.Day()+n)
}

// DaysBetween counts calendar days from a's day to b's day (negative if b is earlier).
func (c Calendar) DaysBetween(a, b time.Time) int {
	a, b = a.In(c.Location()), b.In(c.Location())
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	return c.DaysBetween(a, b) == 0
}

// WeekStart returns the start of the week containing t.
func (c Calendar) WeekStart(t time.Time) time.Time {
	sod := c.StartOfDay(t)
	back := (int(sod.Weekday()) - int(c.weekStart) + 7) % 7
	return c.AddDays(sod, -back)
}

// MonthStart returns the first day of t's month.
func (c Calendar) MonthStart(t time.Time) time.Time {
	t = t.In(c.Location())
	return c.Date(t.Year(), t.Month(), 1)
}

// PeriodStart returns the start of the week or month containing t.
func (c Calendar) PeriodStart(period PeriodType, t time.Time) time.Time {
	if period == PeriodMonth {
		return c.MonthStart(t)
	}
	return c.WeekStart(t)
}

// ShiftPeriods moves a period start by n weeks or months.
func (c Calendar) ShiftPeriods(period PeriodType, start time.Time, n int) time.Time {
	if period == PeriodMonth {
		start = start.In(c.Location())
		return c.Date(start.Year(), start.Month()+time.Month(n), 1)
	}
	return c.AddDays(start, 7*n)
}

// WeeksBetween returns the number of whole weeks from a's day to b's day,
// truncated toward zero.
func (c Calendar) WeeksBetween(a, b time.Time) int {
	return c.DaysBetween(a, b) / 7
}

// MonthsBetween returns the number of whole calendar months from a to b,
// truncated toward zero.
func (c Calendar) MonthsBetween(a, b time.Time) int {
	a, b = a.In(c.Location()), b.In(c.Location())
	diff := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	switch {
	case diff > 0 && b.Day() < a.Day():
		diff--
	case diff < 0 && b.Day() > a.Day():
		diff++
	}
	return diff
}

// PeriodsBetween dispatches to WeeksBetween or MonthsBetween.
func (c Calendar) PeriodsBetween(period PeriodType, a, b time.Time) int {
	if period == PeriodMonth {
		return c.MonthsBetween(a, b)
	}
	return c.WeeksBetween(a, b)
}

// ResolveRange returns the week or month window offset periods away from the
// one containing anchor. Offset 0 is the current period, negative is earlier.
func (c Calendar) ResolveRange(period PeriodType, offset int, anchor time.Time) Period {
	start := c.ShiftPeriods(period, c.PeriodStart(period, anchor), offset)

	var last time.Time
	if period == PeriodMonth {
		last = c.AddDays(c.ShiftPeriods(PeriodMonth, start, 1), -1)
	} else {
		last = c.AddDays(start, 6)
	}

	return Period{Start: start, End: c.EndOfDay(last)}
}

// ParseDate reads an ISO date ("2025-10-25") or an RFC3339 timestamp and
// returns that calendar date at midnight in the calendar's zone. The date is
// taken as written; a timestamp's own offset is not converted first.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return c.Date(t.Year(), t.Month(), t.Day()), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return c.Date(t.Year(), t.Month(), t.Day()), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// FormatDate renders t's calendar day as YYYY-MM-DD.
func (c Calendar) FormatDate(t time.Time) string {
	return t.In(c.Location()).Format(DateLayout)
}

