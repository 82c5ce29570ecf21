package model

import (
	"strings"
	"time"
)

// BundleTitlePrefix marks synthetic tasks that stand in for a day's overflow.
const BundleTitlePrefix = "Bundle: "

// Task is one actionable step of a goal. DueDate is a calendar date
// (midnight in the planner's zone); nil means the generator left it empty.
type Task struct {
	ID                string
	GoalID            string
	Title             string
	DueDate           *time.Time
	IsCompleted       bool
	EstimatedDuration *string

	// BundledFrom lists the IDs of the tasks merged into a bundle. Empty for regular tasks.
	BundledFrom []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBundle reports whether the task is a synthetic overflow bundle.
func (t Task) IsBundle() bool {
	return len(t.BundledFrom) > 0 || strings.HasPrefix(t.Title, BundleTitlePrefix)
}

// Clone returns a deep copy so callers can modify it without touching the original.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.EstimatedDuration != nil {
		e := *t.EstimatedDuration
		c.EstimatedDuration = &e
	}
	if t.BundledFrom != nil {
		c.BundledFrom = append([]string(nil), t.BundledFrom...)
	}
	return c
}

// CloneTasks deep-copies a task slice.
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// TimePtr and StringPtr are small helpers for building optional fields.
func TimePtr(t time.Time) *time.Time { return &t }
func StringPtr(s string) *string     { return &s }
