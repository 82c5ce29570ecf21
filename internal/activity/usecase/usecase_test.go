package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"goal-planner/internal/activity"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/goal/repository/memory"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

var sc = model.Scope{UserID: "user-1"}

// Wednesday 2025-01-22, week starts Monday 2025-01-20.
var clock = time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)

func d(m time.Month, day int) time.Time {
	return time.Date(2025, m, day, 0, 0, 0, 0, time.UTC)
}

func done(t time.Time) model.Task    { return model.Task{Title: "t", DueDate: model.TimePtr(t), IsCompleted: true} }
func pending(t time.Time) model.Task { return model.Task{Title: "t", DueDate: model.TimePtr(t)} }

func seed(t *testing.T, tasks ...model.Task) (*implUseCase, repo.Repository) {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()
	r := memory.New(l)

	g, err := r.CreateGoal(ctx, repo.CreateGoalOptions{UserID: sc.UserID, Title: "g"})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := r.ReplaceTasks(ctx, repo.ReplaceTasksOptions{GoalID: g.ID, Tasks: tasks}); err != nil {
		t.Fatalf("ReplaceTasks: %v", err)
	}

	uc := New(l, r, datemath.DefaultCalendar, Config{Clock: func() time.Time { return clock }})
	return uc, r
}

func TestSummary(t *testing.T) {
	uc, _ := seed(t,
		done(d(1, 20)), done(d(1, 21)), pending(d(1, 21)), done(d(1, 22)),
		pending(d(1, 24)), // upcoming, not failed
		done(d(1, 13)),    // previous week
	)
	ctx := context.Background()

	out, err := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := model.Metrics{Completed: 3, Failed: 1, SuccessRate: 0.75, BestStreakDays: 1}
	if out.Metrics != want {
		t.Errorf("Metrics = %+v, want %+v", out.Metrics, want)
	}
	if !out.Range.Start.Equal(d(1, 20)) {
		t.Errorf("Range.Start = %v", out.Range.Start)
	}

	prev, _ := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek, Offset: -1})
	if prev.Metrics.Completed != 1 || prev.Metrics.BestStreakDays != 1 {
		t.Errorf("previous week = %+v", prev.Metrics)
	}

	if _, err := uc.Summary(ctx, sc, activity.SummaryInput{Period: "year"}); !errors.Is(err, activity.ErrInvalidPeriod) {
		t.Errorf("bad period err = %v", err)
	}
}

func TestSummaryCacheInvalidation(t *testing.T) {
	uc, r := seed(t, done(d(1, 20)))
	ctx := context.Background()

	first, _ := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek})

	goals, _ := r.ListGoals(ctx, repo.ListGoalsOptions{UserID: sc.UserID})
	r.ReplaceTasks(ctx, repo.ReplaceTasksOptions{GoalID: goals[0].ID, Tasks: []model.Task{done(d(1, 20)), done(d(1, 21))}})

	cached, _ := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek})
	if cached.Metrics != first.Metrics {
		t.Fatalf("expected cached result before invalidation")
	}

	uc.Invalidate(sc.UserID)
	fresh, _ := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek})
	if fresh.Metrics.Completed != 2 || fresh.Metrics.BestStreakDays != 2 {
		t.Errorf("after invalidation = %+v", fresh.Metrics)
	}
}

func TestCachedResultsAreCopies(t *testing.T) {
	uc, _ := seed(t, done(d(1, 8)), done(d(1, 21)))
	ctx := context.Background()

	if _, err := uc.AddMood(ctx, sc, activity.AddMoodInput{Score: 4, Note: "calm"}); err != nil {
		t.Fatalf("AddMood: %v", err)
	}

	sumIn := activity.SummaryInput{Period: datemath.PeriodWeek}
	first, err := uc.Summary(ctx, sc, sumIn)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(first.Moods) != 1 {
		t.Fatalf("moods = %d, want 1", len(first.Moods))
	}
	first.Moods[0].Note = "changed"
	first.Moods = append(first.Moods, model.MoodRecord{Note: "extra"})

	again, _ := uc.Summary(ctx, sc, sumIn)
	if len(again.Moods) != 1 || again.Moods[0].Note != "calm" {
		t.Errorf("cached summary moods = %+v", again.Moods)
	}

	histIn := activity.HistogramInput{Period: datemath.PeriodWeek, Count: 3}
	h, err := uc.Histogram(ctx, sc, histIn)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	want := h.Histogram
	want.Counts = append([]int(nil), h.Histogram.Counts...)
	want.Labels = append([]string(nil), h.Histogram.Labels...)
	for i := range h.Histogram.Counts {
		h.Histogram.Counts[i] = 99
		h.Histogram.Labels[i] = "x"
	}

	hAgain, _ := uc.Histogram(ctx, sc, histIn)
	if !reflect.DeepEqual(hAgain.Histogram, want) {
		t.Errorf("cached histogram = %+v, want %+v", hAgain.Histogram, want)
	}
}

func TestHistogram(t *testing.T) {
	uc, _ := seed(t, done(d(12, 30).AddDate(-1, 0, 0)), done(d(1, 8)), done(d(1, 21)), pending(d(1, 14)))

	out, err := uc.Histogram(context.Background(), sc, activity.HistogramInput{Period: datemath.PeriodWeek, Count: 4})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if want := []int{1, 1, 0, 1}; !reflect.DeepEqual(out.Histogram.Counts, want) {
		t.Errorf("Counts = %v, want %v", out.Histogram.Counts, want)
	}

	def, _ := uc.Histogram(context.Background(), sc, activity.HistogramInput{Period: datemath.PeriodMonth})
	if len(def.Histogram.Counts) != activity.DefaultHistogramCount {
		t.Errorf("default count = %d", len(def.Histogram.Counts))
	}

	capped, _ := uc.Histogram(context.Background(), sc, activity.HistogramInput{Period: datemath.PeriodWeek, Count: 1000})
	if len(capped.Histogram.Counts) != activity.MaxHistogramCount {
		t.Errorf("capped count = %d", len(capped.Histogram.Counts))
	}
}

func TestStats(t *testing.T) {
	uc, r := seed(t, done(d(1, 20)), done(d(1, 2)), pending(d(1, 21)), done(d(2, 3)))
	ctx := context.Background()

	out, err := uc.Stats(ctx, sc)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.Stats.WeekCompletedCount != 1 || out.Stats.MonthCompletedCount != 2 || !out.Stats.ComputedAt.Equal(clock) {
		t.Errorf("Stats = %+v", out.Stats)
	}

	stored, _ := r.GetStats(ctx, sc.UserID)
	if stored != out.Stats {
		t.Errorf("stats not stored: %+v", stored)
	}
}

func TestAddMoodClampsScore(t *testing.T) {
	uc, _ := seed(t)
	ctx := context.Background()

	tests := []struct {
		score, want int
	}{
		{0, 1}, {3, 3}, {9, 5},
	}
	for _, tt := range tests {
		out, err := uc.AddMood(ctx, sc, activity.AddMoodInput{Score: tt.score, Note: " ok "})
		if err != nil {
			t.Fatalf("AddMood: %v", err)
		}
		if out.Mood.Score != tt.want || out.Mood.Note != "ok" || !out.Mood.Date.Equal(d(1, 22)) {
			t.Errorf("AddMood(%d) = %+v", tt.score, out.Mood)
		}
	}

	sum, _ := uc.Summary(ctx, sc, activity.SummaryInput{Period: datemath.PeriodWeek})
	if len(sum.Moods) != 3 {
		t.Errorf("moods in summary = %d", len(sum.Moods))
	}
}
