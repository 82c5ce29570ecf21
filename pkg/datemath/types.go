package datemath

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType selects a calendar-aligned window size.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

// ParsePeriodType accepts "week"/"weekly" and "month"/"monthly" (case-insensitive).
func ParsePeriodType(s string) (PeriodType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly":
		return PeriodWeek, nil
	case "month", "monthly":
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Period is an inclusive window. Start is the first instant of the first day,
// End is the last instant of the last day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
