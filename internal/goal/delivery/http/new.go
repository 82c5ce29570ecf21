package http

import (
	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  goal.UseCase
	cal datemath.Calendar
}

// New creates the HTTP handler for the goal domain. cal parses date parameters.
func New(l log.Logger, uc goal.UseCase, cal datemath.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
