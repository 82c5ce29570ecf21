package goal

import "errors"

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTitle     = errors.New("goal title is required")
	ErrEmptyInput     = errors.New("breakdown input is empty")
	ErrInvalidPayload = errors.New("invalid breakdown payload")
	ErrNoTasksParsed  = errors.New("no valid tasks in breakdown payload")
	ErrInvalidDate    = errors.New("invalid date")
)
