package usecase

import (
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository"
	"goal-planner/internal/schedule"
	"goal-planner/pkg/datemath"
	pkgLog "goal-planner/pkg/log"
)

const (
	DefaultIcon     = "checklist"
	DefaultColorHex = "#4F46E5"
)

// Config tunes how breakdowns are scheduled. Zero values fall back to defaults.
type Config struct {
	MaxPerDay              int
	StrictCap              bool
	DefaultDurationMinutes int
	DefaultWindowDays      int

	// Exporter and Invalidator are optional.
	Exporter    goal.CalendarExporter
	Invalidator goal.ActivityInvalidator

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// implUseCase is the private implementation of goal.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	dateMath    *datemath.Parser
	cal         datemath.Calendar
	exporter    goal.CalendarExporter
	invalidator goal.ActivityInvalidator
	now         func() time.Time

	maxPerDay       int
	strictCap       bool
	defaultDuration int
	windowDays      int
}

// New creates a new goal UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:               l,
		repo:            repo,
		dateMath:        dateMath,
		cal:             dateMath.Calendar(),
		exporter:        cfg.Exporter,
		invalidator:     cfg.Invalidator,
		now:             cfg.Clock,
		maxPerDay:       cfg.MaxPerDay,
		strictCap:       cfg.StrictCap,
		defaultDuration: cfg.DefaultDurationMinutes,
		windowDays:      cfg.DefaultWindowDays,
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.defaultDuration <= 0 {
		uc.defaultDuration = schedule.DefaultDurationMinutes
	}
	if uc.windowDays <= 0 {
		uc.windowDays = 7
	}
	return uc
}

func (uc *implUseCase) today() time.Time {
	return uc.cal.StartOfDay(uc.now())
}

func (uc *implUseCase) invalidate(userID string) {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(userID)
	}
}
