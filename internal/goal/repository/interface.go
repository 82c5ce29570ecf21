package repository

import (
	"context"

	"goal-planner/internal/model"
)

// Repository is the composed interface for the planner data store.
type Repository interface {
	GoalRepository
	TaskRepository
	MoodRepository
	StatsRepository
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// GoalRepository defines data access for goals. Goals are returned without tasks.
type GoalRepository interface {
	CreateGoal(ctx context.Context, opt CreateGoalOptions) (model.Goal, error)
	// GetOneGoal returns a zero-value Goal (ID == "") when nothing matches.
	GetOneGoal(ctx context.Context, opt GetOneGoalOptions) (model.Goal, error)
	ListGoals(ctx context.Context, opt ListGoalsOptions) ([]model.Goal, error)
	// DeleteGoal removes the goal and its tasks.
	DeleteGoal(ctx context.Context, opt DeleteGoalOptions) error
}

// TaskRepository defines data access for tasks.
type TaskRepository interface {
	// ReplaceTasks swaps a goal's whole task list in one transaction.
	ReplaceTasks(ctx context.Context, opt ReplaceTasksOptions) ([]model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	UpdateTaskCompletion(ctx context.Context, opt UpdateTaskCompletionOptions) (model.Task, error)
	// ListTaskOwners returns the IDs of users that own at least one task.
	ListTaskOwners(ctx context.Context) ([]string, error)
}

// MoodRepository defines data access for mood logs.
type MoodRepository interface {
	CreateMood(ctx context.Context, opt CreateMoodOptions) (model.MoodRecord, error)
	ListMoods(ctx context.Context, opt ListMoodsOptions) ([]model.MoodRecord, error)
}

// StatsRepository stores the periodic activity rollups.
type StatsRepository interface {
	UpsertStats(ctx context.Context, stats model.ActivityStats) error
	// GetStats returns a zero-value ActivityStats (ComputedAt.IsZero()) when none is stored.
	GetStats(ctx context.Context, userID string) (model.ActivityStats, error)
}
