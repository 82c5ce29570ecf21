package activity

import (
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

const (
	DefaultHistogramCount = 7
	MaxHistogramCount     = 104
)

// --- UseCase Inputs ---

type SummaryInput struct {
	Period datemath.PeriodType
	// Offset counts periods from the current one; negative is the past.
	Offset int
}

type HistogramInput struct {
	Period datemath.PeriodType
	// Count defaults to DefaultHistogramCount and is capped at MaxHistogramCount.
	Count int
}

type AddMoodInput struct {
	Score int
	Note  string
	// Date defaults to today.
	Date *time.Time
}

// --- UseCase Outputs ---

type SummaryOutput struct {
	Period  datemath.PeriodType
	Range   datemath.Period
	Metrics model.Metrics
	Moods   []model.MoodRecord
}

type HistogramOutput struct {
	Period    datemath.PeriodType
	Histogram model.Histogram
}

type StatsOutput struct {
	Stats model.ActivityStats
}

type AddMoodOutput struct {
	Mood model.MoodRecord
}
