package goal

import (
	"context"

	"goal-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Goals
	CreateGoal(ctx context.Context, sc model.Scope, input CreateGoalInput) (CreateGoalOutput, error)
	ListGoals(ctx context.Context, sc model.Scope) (ListGoalsOutput, error)
	DetailGoal(ctx context.Context, sc model.Scope, id string) (DetailGoalOutput, error)
	DeleteGoal(ctx context.Context, sc model.Scope, id string) error

	// Plan ingestion
	Breakdown(ctx context.Context, sc model.Scope, input BreakdownInput) (BreakdownOutput, error)

	// Tasks
	ToggleTask(ctx context.Context, sc model.Scope, taskID string) (ToggleTaskOutput, error)
	TasksForDay(ctx context.Context, sc model.Scope, input TasksForDayInput) (TasksForDayOutput, error)
}

// CalendarExporter publishes a goal's normalized tasks to an external calendar.
type CalendarExporter interface {
	ExportTasks(ctx context.Context, g model.Goal, tasks []model.Task) error
}

// ActivityInvalidator drops cached analytics after a user's tasks change.
type ActivityInvalidator interface {
	Invalidate(userID string)
}
