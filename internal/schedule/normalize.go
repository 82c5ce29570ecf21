// Package schedule fits a generated task list into a goal's date window and
// enforces a per-day capacity by bundling overflow into a single task.
package schedule

import (
	"sort"
	"strings"
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/duration"

	"github.com/google/uuid"
)

const (
	// DefaultMaxPerDay is the per-day cap used by the planner when none is configured.
	DefaultMaxPerDay = 3
	// DefaultDurationMinutes is charged for tasks whose estimate can't be parsed.
	DefaultDurationMinutes = 30

	bundleSeparator = "; "
)

type options struct {
	cal             datemath.Calendar
	defaultDuration int
	strictCap       bool
	newID           func() string
}

// Option customizes Normalize.
type Option func(*options)

// WithCalendar sets the zone used to decide which day a due date falls on.
func WithCalendar(cal datemath.Calendar) Option {
	return func(o *options) { o.cal = cal }
}

// WithDefaultDuration sets the minutes charged for an unparseable estimate.
func WithDefaultDuration(minutes int) Option {
	return func(o *options) {
		if minutes >= 0 {
			o.defaultDuration = minutes
		}
	}
}

// WithStrictCap keeps maxPerDay-1 tasks on an overflowing day, so a day never
// holds more than maxPerDay records even when maxPerDay is 1.
func WithStrictCap() Option {
	return func(o *options) { o.strictCap = true }
}

// WithIDGenerator sets the ID source for bundle records.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Normalize clamps every task into [windowStart, windowEnd] by day, resets
// completion and merges the overflow of any day above maxPerDay into one
// bundle. The result is sorted by due date then title. tasks is not modified.
// maxPerDay <= 0 disables capping.
func Normalize(tasks []model.Task, windowStart, windowEnd time.Time, maxPerDay int, opts ...Option) []model.Task {
	o := options{
		cal:             datemath.DefaultCalendar,
		defaultDuration: DefaultDurationMinutes,
		newID:           func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(tasks) == 0 {
		return []model.Task{}
	}

	startDay := o.cal.StartOfDay(windowStart)
	endDay := o.cal.StartOfDay(windowEnd)

	byDay := make(map[time.Time][]model.Task)
	var days []time.Time
	for _, t := range tasks {
		c := t.Clone()
		day := clampDay(o.cal, c.DueDate, startDay, endDay)
		c.DueDate = model.TimePtr(day)
		c.IsCompleted = false

		key := day.UTC()
		if _, ok := byDay[key]; !ok {
			days = append(days, key)
		}
		byDay[key] = append(byDay[key], c)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]model.Task, 0, len(tasks))
	for _, key := range days {
		group := byDay[key]
		if maxPerDay <= 0 || len(group) <= maxPerDay {
			out = append(out, group...)
			continue
		}

		keep := maxPerDay - 1
		if !o.strictCap && keep < 1 {
			keep = 1
		}
		out = append(out, group[:keep]...)
		out = append(out, o.bundle(group[keep:], *group[0].DueDate))
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := *out[i].DueDate, *out[j].DueDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// clampDay applies min(max(day, start), end), so an inverted window sends
// everything to end. A missing due date also lands on end.
func clampDay(cal datemath.Calendar, due *time.Time, start, end time.Time) time.Time {
	if due == nil {
		return end
	}
	day := cal.StartOfDay(*due)
	if day.Before(start) {
		day = start
	}
	if day.After(end) {
		day = end
	}
	return day
}

func (o options) bundle(overflow []model.Task, day time.Time) model.Task {
	titles := make([]string, 0, len(overflow))
	sources := make([]string, 0, len(overflow))
	total := 0
	for _, t := range overflow {
		titles = append(titles, t.Title)
		if t.ID != "" {
			sources = append(sources, t.ID)
		}
		if m, ok := duration.ParsePtr(t.EstimatedDuration); ok {
			total += m
		} else {
			total += o.defaultDuration
		}
	}

	return model.Task{
		ID:                o.newID(),
		GoalID:            overflow[0].GoalID,
		Title:             model.BundleTitlePrefix + strings.Join(titles, bundleSeparator),
		DueDate:           model.TimePtr(day),
		IsCompleted:       false,
		EstimatedDuration: model.StringPtr(duration.FormatMinutes(total)),
		BundledFrom:       sources,
	}
}
