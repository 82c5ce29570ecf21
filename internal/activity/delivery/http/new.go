package http

import (
	"goal-planner/internal/activity"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  activity.UseCase
	cal datemath.Calendar
}

// New creates the HTTP handler for the activity domain.
func New(l log.Logger, uc activity.UseCase, cal datemath.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
