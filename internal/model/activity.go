package model

import "time"

// Metrics summarizes task outcomes in a date range.
type Metrics struct {
	Completed      int
	Failed         int
	SuccessRate    float64
	BestStreakDays int
}

// Histogram holds completed-task counts per period, oldest first.
type Histogram struct {
	Counts []int
	Labels []string
}

// Max returns the largest bucket, 0 for an empty histogram.
func (h Histogram) Max() int {
	best := 0
	for _, c := range h.Counts {
		if c > best {
			best = c
		}
	}
	return best
}

// ActivityStats is the periodic rollup of completed counts for a user.
type ActivityStats struct {
	UserID              string
	WeekCompletedCount  int
	MonthCompletedCount int
	ComputedAt          time.Time
}
