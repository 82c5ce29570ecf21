package analytics

import (
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

const (
	DefaultWeekLabelLayout  = "Jan 2"
	DefaultMonthLabelLayout = "Jan 2006"
)

type histogramOptions struct {
	weekLayout  string
	monthLayout string
}

// HistogramOption customizes BuildHistogram.
type HistogramOption func(*histogramOptions)

// WithLabelLayouts overrides the time layouts used for week and month labels.
// An empty layout keeps the default.
func WithLabelLayouts(week, month string) HistogramOption {
	return func(o *histogramOptions) {
		if week != "" {
			o.weekLayout = week
		}
		if month != "" {
			o.monthLayout = month
		}
	}
}

// BuildHistogram counts completed tasks per period for the count periods
// ending with the one containing until. Index 0 is the oldest period. Tasks
// outside the window land in the first or last bucket.
func BuildHistogram(tasks []model.Task, period datemath.PeriodType, count int, until time.Time, cal datemath.Calendar, opts ...HistogramOption) model.Histogram {
	o := histogramOptions{
		weekLayout:  DefaultWeekLabelLayout,
		monthLayout: DefaultMonthLabelLayout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if count <= 0 {
		return model.Histogram{Counts: []int{}, Labels: []string{}}
	}

	anchor := cal.PeriodStart(period, until)
	first := cal.ShiftPeriods(period, anchor, -(count - 1))

	counts := make([]int, count)
	for _, t := range tasks {
		if !t.IsCompleted || t.DueDate == nil {
			continue
		}
		idx := cal.PeriodsBetween(period, first, *t.DueDate)
		idx = min(max(idx, 0), count-1)
		counts[idx]++
	}

	layout := o.weekLayout
	if period == datemath.PeriodMonth {
		layout = o.monthLayout
	}
	labels := make([]string, count)
	for i := range labels {
		labels[i] = cal.ShiftPeriods(period, first, i).Format(layout)
	}

	return model.Histogram{Counts: counts, Labels: labels}
}
