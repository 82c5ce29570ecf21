package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/pkg/log"
)

type implRepository struct {
	mu sync.RWMutex
	l  log.Logger

	goals     map[string]model.Goal
	tasks     map[string]model.Task
	goalTasks map[string][]string
	moods     []model.MoodRecord
	stats     map[string]model.ActivityStats

	now   func() time.Time
	newID func() string
}

// Option customizes the in-memory repository.
type Option func(*implRepository)

// WithClock sets the source of created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// WithIDGenerator sets the ID source for new records.
func WithIDGenerator(fn func() string) Option {
	return func(r *implRepository) { r.newID = fn }
}

// New creates a map-backed Repository. It is safe for concurrent use.
func New(l log.Logger, opts ...Option) repository.Repository {
	r := &implRepository{
		l:         l,
		goals:     make(map[string]model.Goal),
		tasks:     make(map[string]model.Task),
		goalTasks: make(map[string][]string),
		stats:     make(map[string]model.ActivityStats),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *implRepository) Close() error {
	return nil
}
