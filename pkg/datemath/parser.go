package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when a date phrase matches no known form.
var ErrUnrecognized = errors.New("unrecognized date expression")

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts absolute or relative date strings to calendar dates.
type Parser struct {
	cal Calendar
}

// NewParser creates a date parser for the given IANA timezone string. Weeks start on Monday.
func NewParser(timezone string) (*Parser, error) {
	cal, err := NewCalendar(timezone, time.Monday)
	if err != nil {
		return nil, err
	}
	return &Parser{cal: cal}, nil
}

// NewParserWithCalendar creates a parser bound to an existing calendar.
func NewParserWithCalendar(cal Calendar) *Parser {
	return &Parser{cal: cal}
}

// Calendar returns the calendar the parser resolves dates in.
func (p *Parser) Calendar() Calendar {
	return p.cal
}

// ParseDue accepts an ISO date / RFC3339 timestamp first and falls back to a
// relative phrase resolved against baseTime.
func (p *Parser) ParseDue(text string, baseTime time.Time) (time.Time, error) {
	if t, err := p.cal.ParseDate(text); err == nil {
		return t, nil
	}
	return p.Parse(text, baseTime)
}

// Parse converts a relative date string to the start of the resolved day.
// The baseTime is used as the reference point (usually the injected clock).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.cal.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.cal.AddDays(baseTime, 1), nil
	case "yesterday":
		return p.cal.AddDays(baseTime, -1), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.cal.AddDays(baseTime, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.cal.AddDays(baseTime, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return p.cal.StartOfDay(baseTime.In(p.cal.Location()).AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, err := ParseWeekday(dayName)
	if err != nil {
		return baseTime, err
	}

	currentWeekday := baseTime.In(p.cal.Location()).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.cal.AddDays(baseTime, daysUntil), nil
}

// EndOfDay returns the last instant of the given day.
func (p *Parser) EndOfDay(day time.Time) time.Time {
	return p.cal.EndOfDay(day)
}
