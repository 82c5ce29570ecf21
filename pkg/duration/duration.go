// Package duration converts the free-text effort estimates produced by the
// goal breakdown generator ("25-35 minutes", "1 hour", "45 min") to minutes
// and back.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeMinRe    = regexp.MustCompile(`(\d+)\s*[-–—]\s*(\d+)\s*min`)
	compoundRe    = regexp.MustCompile(`(\d+)\s*hours?\s*(?:and\s*)?(\d+)\s*min`)
	decimalHourRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*hour`)
	singleMinRe   = regexp.MustCompile(`(\d+)\s*min`)
)

// ParseMinutes extracts a minute count from text. The first matching rule wins:
// a "N-M min" range (upper bound), a compound "H hour(s) M minutes", a decimal
// "H hour" and finally a plain "N min". ok is false when nothing matches.
func ParseMinutes(text string) (minutes int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	if m := rangeMinRe.FindStringSubmatch(s); m != nil {
		if upper, err := strconv.Atoi(m[2]); err == nil {
			return upper, true
		}
	}

	if m := compoundRe.FindStringSubmatch(s); m != nil {
		h, errH := strconv.Atoi(m[1])
		mins, errM := strconv.Atoi(m[2])
		if errH == nil && errM == nil {
			return h*60 + mins, true
		}
	}

	if m := decimalHourRe.FindStringSubmatch(s); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(hours * 60)), true
		}
	}

	if m := singleMinRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}

	return 0, false
}

// ParsePtr is ParseMinutes for an optional estimate.
func ParsePtr(text *string) (int, bool) {
	if text == nil {
		return 0, false
	}
	return ParseMinutes(*text)
}

// FormatMinutes renders minutes as "N minutes", "H hour(s)" or "H hour(s) M minutes".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	h := minutes / 60
	m := minutes % 60

	unit := "hour"
	if h > 1 {
		unit = "hours"
	}
	if m == 0 {
		return fmt.Sprintf("%d %s", h, unit)
	}
	return fmt.Sprintf("%d %s %d minutes", h, unit, m)
}
