package usecase

import (
	"context"
	"strings"

	"goal-planner/internal/activity"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

// Stats returns the stored rollup, computing it when none exists yet.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (activity.StatsOutput, error) {
	s, err := uc.repo.GetStats(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetStats: %v", err)
		return activity.StatsOutput{}, err
	}
	if !s.ComputedAt.IsZero() {
		return activity.StatsOutput{Stats: s}, nil
	}

	s, err = uc.ComputeStats(ctx, sc.UserID)
	if err != nil {
		return activity.StatsOutput{}, err
	}
	return activity.StatsOutput{Stats: s}, nil
}

// ComputeStats counts the user's completed tasks due this week and this month
// and stores the result.
func (uc *implUseCase) ComputeStats(ctx context.Context, userID string) (model.ActivityStats, error) {
	now := uc.now()
	week := uc.cal.ResolveRange(datemath.PeriodWeek, 0, now)
	month := uc.cal.ResolveRange(datemath.PeriodMonth, 0, now)

	from := week.Start
	if month.Start.Before(from) {
		from = month.Start
	}
	to := week.End
	if month.End.After(to) {
		to = month.End
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  userID,
		DueFrom: model.TimePtr(from),
		DueTo:   model.TimePtr(uc.cal.StartOfDay(to)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ComputeStats ListTasks: %v", err)
		return model.ActivityStats{}, err
	}

	s := model.ActivityStats{UserID: userID, ComputedAt: now}
	for _, t := range tasks {
		if !t.IsCompleted || t.DueDate == nil {
			continue
		}
		if week.Contains(*t.DueDate) {
			s.WeekCompletedCount++
		}
		if month.Contains(*t.DueDate) {
			s.MonthCompletedCount++
		}
	}

	if err := uc.repo.UpsertStats(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.ComputeStats UpsertStats: %v", err)
		return model.ActivityStats{}, err
	}
	return s, nil
}

// AddMood logs a mood for a day, today by default. The score is clamped to 1..5.
func (uc *implUseCase) AddMood(ctx context.Context, sc model.Scope, input activity.AddMoodInput) (activity.AddMoodOutput, error) {
	date := uc.cal.StartOfDay(uc.now())
	if input.Date != nil {
		date = uc.cal.StartOfDay(*input.Date)
	}
	score := min(max(input.Score, model.MinMoodScore), model.MaxMoodScore)

	m, err := uc.repo.CreateMood(ctx, repo.CreateMoodOptions{
		UserID: sc.UserID,
		Date:   date,
		Score:  score,
		Note:   strings.TrimSpace(input.Note),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddMood CreateMood: %v", err)
		return activity.AddMoodOutput{}, err
	}

	uc.Invalidate(sc.UserID)
	return activity.AddMoodOutput{Mood: m}, nil
}
