package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"goal-planner/internal/activity"
	"goal-planner/internal/analytics"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

// Summary computes completion metrics for one week or month and lists the
// moods logged in it.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, input activity.SummaryInput) (activity.SummaryOutput, error) {
	if err := validPeriod(input.Period); err != nil {
		return activity.SummaryOutput{}, err
	}

	now := uc.now()
	key := fmt.Sprintf("%s|summary|%s|%d|%s", sc.UserID, input.Period, input.Offset, uc.cal.FormatDate(now))
	if v, ok := uc.cache.Get(key); ok {
		return cloneSummary(v.(activity.SummaryOutput)), nil
	}

	rng := uc.cal.ResolveRange(input.Period, input.Offset, now)

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		DueFrom: model.TimePtr(rng.Start),
		DueTo:   model.TimePtr(uc.cal.StartOfDay(rng.End)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListTasks: %v", err)
		return activity.SummaryOutput{}, err
	}

	moods, err := uc.repo.ListMoods(ctx, repo.ListMoodsOptions{
		UserID: sc.UserID,
		From:   model.TimePtr(rng.Start),
		To:     model.TimePtr(uc.cal.StartOfDay(rng.End)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListMoods: %v", err)
		return activity.SummaryOutput{}, err
	}

	out := activity.SummaryOutput{
		Period:  input.Period,
		Range:   rng,
		Metrics: analytics.ComputeMetrics(tasks, rng, now, uc.cal),
		Moods:   moods,
	}
	uc.cache.Add(key, cloneSummary(out))
	return out, nil
}

// Histogram counts completed tasks per period for the last Count periods.
func (uc *implUseCase) Histogram(ctx context.Context, sc model.Scope, input activity.HistogramInput) (activity.HistogramOutput, error) {
	if err := validPeriod(input.Period); err != nil {
		return activity.HistogramOutput{}, err
	}

	count := input.Count
	if count <= 0 {
		count = uc.histogramCount
	}
	count = min(count, activity.MaxHistogramCount)

	now := uc.now()
	key := fmt.Sprintf("%s|histogram|%s|%d|%s", sc.UserID, input.Period, count, uc.cal.FormatDate(now))
	if v, ok := uc.cache.Get(key); ok {
		return cloneHistogram(v.(activity.HistogramOutput)), nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Histogram ListTasks: %v", err)
		return activity.HistogramOutput{}, err
	}

	out := activity.HistogramOutput{
		Period:    input.Period,
		Histogram: analytics.BuildHistogram(tasks, input.Period, count, now, uc.cal),
	}
	uc.cache.Add(key, cloneHistogram(out))
	return out, nil
}

// Invalidate drops every cached result of the user.
func (uc *implUseCase) Invalidate(userID string) {
	prefix := userID + "|"
	for _, k := range uc.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			uc.cache.Remove(k)
		}
	}
}

// Cached outputs are shared, so callers only ever see copies of their slices.
func cloneSummary(out activity.SummaryOutput) activity.SummaryOutput {
	out.Moods = slices.Clone(out.Moods)
	return out
}

func cloneHistogram(out activity.HistogramOutput) activity.HistogramOutput {
	out.Histogram.Counts = slices.Clone(out.Histogram.Counts)
	out.Histogram.Labels = slices.Clone(out.Histogram.Labels)
	return out
}

func validPeriod(p datemath.PeriodType) error {
	if p != datemath.PeriodWeek && p != datemath.PeriodMonth {
		return activity.ErrInvalidPeriod
	}
	return nil
}
