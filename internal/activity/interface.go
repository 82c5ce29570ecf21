package activity

import (
	"context"

	"goal-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Summary(ctx context.Context, sc model.Scope, input SummaryInput) (SummaryOutput, error)
	Histogram(ctx context.Context, sc model.Scope, input HistogramInput) (HistogramOutput, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	AddMood(ctx context.Context, sc model.Scope, input AddMoodInput) (AddMoodOutput, error)

	// ComputeStats recomputes and stores the rollup for one user.
	ComputeStats(ctx context.Context, userID string) (model.ActivityStats, error)
	// Invalidate drops every cached result of the user.
	Invalidate(userID string)
}
