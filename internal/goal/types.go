package goal

import (
	"time"

	"goal-planner/internal/model"
)

// --- UseCase Inputs ---

type CreateGoalInput struct {
	Title     string
	Icon      string
	ColorHex  string
	StartDate *time.Time
	Deadline  *time.Time
}

// GeneratedTask is one task as the breakdown generator emitted it. Every field
// is unvalidated text.
type GeneratedTask struct {
	Title             string `json:"title" yaml:"title"`
	DueDate           string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	EstimatedDuration string `json:"estimatedDuration,omitempty" yaml:"estimatedDuration,omitempty"`
}

// GeneratedPlan is the generator's structured reply.
type GeneratedPlan struct {
	ChatReply string          `json:"chatReply" yaml:"chatReply"`
	Tasks     []GeneratedTask `json:"tasks" yaml:"tasks"`
}

// BreakdownInput carries either the raw generator text or already decoded tasks.
// Raw wins when both are set.
type BreakdownInput struct {
	GoalID string
	Raw    string
	Tasks  []GeneratedTask
}

type TasksForDayInput struct {
	// Day defaults to today when nil.
	Day *time.Time
}

// --- UseCase Outputs ---

type CreateGoalOutput struct {
	Goal model.Goal
}

type ListGoalsOutput struct {
	Goals []model.Goal
}

type DetailGoalOutput struct {
	Goal model.Goal
}

type BreakdownOutput struct {
	Goal      model.Goal
	Tasks     []model.Task
	ChatReply string
	// Dropped counts generated tasks rejected during validation.
	Dropped int
}

type ToggleTaskOutput struct {
	Task model.Task
}

type TasksForDayOutput struct {
	Day   time.Time
	Tasks []model.Task
}
