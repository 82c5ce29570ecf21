package repository

import (
	"time"

	"goal-planner/internal/model"
)

// CreateGoalOptions holds parameters for inserting a new Goal.
type CreateGoalOptions struct {
	UserID    string
	Title     string
	Icon      string
	ColorHex  string
	StartDate *time.Time
	Deadline  *time.Time
}

// GetOneGoalOptions holds filter parameters for fetching a single Goal.
// All non-empty fields are applied as AND conditions.
type GetOneGoalOptions struct {
	ID     string
	UserID string
}

// ListGoalsOptions holds filter parameters for listing Goals.
type ListGoalsOptions struct {
	UserID string
}

type DeleteGoalOptions struct {
	ID     string
	UserID string
}

// ReplaceTasksOptions holds the new task list for a goal. Task IDs are kept
// when set and generated otherwise.
type ReplaceTasksOptions struct {
	GoalID string
	Tasks  []model.Task
}

// ListTasksOptions filters tasks. DueFrom and DueTo are inclusive calendar days.
type ListTasksOptions struct {
	UserID  string
	GoalID  string
	DueFrom *time.Time
	DueTo   *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

type UpdateTaskCompletionOptions struct {
	ID          string
	IsCompleted bool
}

type CreateMoodOptions struct {
	UserID string
	Date   time.Time
	Score  int
	Note   string
}

// ListMoodsOptions filters moods by user and an inclusive day range.
type ListMoodsOptions struct {
	UserID string
	From   *time.Time
	To     *time.Time
}
