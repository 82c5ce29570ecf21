package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"goal-planner/internal/activity"
	"goal-planner/internal/goal/repository"
	"goal-planner/pkg/datemath"
	pkgLog "goal-planner/pkg/log"
)

// Config tunes the activity use case. Zero values fall back to defaults.
type Config struct {
	HistogramCount int
	CacheSize      int
	CacheTTL       time.Duration
	Clock          func() time.Time
}

// implUseCase is the private implementation of activity.UseCase.
type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.Repository
	cal            datemath.Calendar
	now            func() time.Time
	histogramCount int

	// keys are "<user>|<kind>|..." so a user's entries share a prefix
	cache *expirable.LRU[string, any]
}

// New creates a new activity UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, cal datemath.Calendar, cfg Config) *implUseCase {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.HistogramCount <= 0 {
		cfg.HistogramCount = activity.DefaultHistogramCount
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 512
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}

	return &implUseCase{
		l:              l,
		repo:           repo,
		cal:            cal,
		now:            cfg.Clock,
		histogramCount: min(cfg.HistogramCount, activity.MaxHistogramCount),
		cache:          expirable.NewLRU[string, any](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
