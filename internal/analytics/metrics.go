// Package analytics derives completion metrics and period histograms from
// stored tasks. Every function is pure: the clock and calendar are passed in.
package analytics

import (
	"sort"
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

// ComputeMetrics summarizes the tasks due inside rng. A task is failed when it
// is incomplete and its due day is before now's day. The best streak is the
// longest run of consecutive days on which every due task is completed.
func ComputeMetrics(tasks []model.Task, rng datemath.Period, now time.Time, cal datemath.Calendar) model.Metrics {
	today := cal.StartOfDay(now)

	var m model.Metrics
	// day -> all tasks of that day completed
	daily := make(map[time.Time]bool)

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		due := cal.StartOfDay(*t.DueDate)
		if due.Before(rng.Start) || due.After(rng.End) {
			continue
		}

		if t.IsCompleted {
			m.Completed++
		} else if due.Before(today) {
			m.Failed++
		}

		key := due.UTC()
		done, seen := daily[key]
		daily[key] = t.IsCompleted && (done || !seen)
	}

	m.SuccessRate = float64(m.Completed) / float64(max(1, m.Completed+m.Failed))
	m.BestStreakDays = bestStreak(daily, cal)
	return m
}

func bestStreak(daily map[time.Time]bool, cal datemath.Calendar) int {
	var full []time.Time
	for d, done := range daily {
		if done {
			full = append(full, d)
		}
	}
	if len(full) == 0 {
		return 0
	}
	sort.Slice(full, func(i, j int) bool { return full[i].Before(full[j]) })

	best, current := 1, 1
	for i := 1; i < len(full); i++ {
		if cal.DaysBetween(full[i-1], full[i]) == 1 {
			current++
		} else {
			current = 1
		}
		best = max(best, current)
	}
	return best
}
