package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/internal/schedule"
)

// Breakdown validates a generated plan, fits it into the goal's window and
// replaces the goal's task list with the result.
func (uc *implUseCase) Breakdown(ctx context.Context, sc model.Scope, input goal.BreakdownInput) (goal.BreakdownOutput, error) {
	if strings.TrimSpace(input.Raw) == "" && len(input.Tasks) == 0 {
		return goal.BreakdownOutput{}, goal.ErrEmptyInput
	}

	g, err := uc.getGoal(ctx, sc, input.GoalID)
	if err != nil {
		return goal.BreakdownOutput{}, err
	}

	plan := goal.GeneratedPlan{Tasks: input.Tasks}
	if strings.TrimSpace(input.Raw) != "" {
		plan, err = decodePlan(input.Raw)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Breakdown decodePlan: user=%s goal=%s: %v", sc.UserID, g.ID, err)
			return goal.BreakdownOutput{}, fmt.Errorf("%w: %v", goal.ErrInvalidPayload, err)
		}
	}

	now := uc.now()
	candidates, dropped := uc.validateTasks(ctx, plan.Tasks, now)
	if len(candidates) == 0 {
		return goal.BreakdownOutput{}, goal.ErrNoTasksParsed
	}

	start, end := uc.window(g)
	normalized := schedule.Normalize(candidates, start, end, uc.maxPerDay, uc.scheduleOptions()...)

	uc.l.Infof(ctx, "uc.Breakdown: user=%s goal=%s generated=%d dropped=%d normalized=%d window=%s..%s",
		sc.UserID, g.ID, len(plan.Tasks), dropped, len(normalized),
		uc.cal.FormatDate(start), uc.cal.FormatDate(end))

	stored, err := uc.repo.ReplaceTasks(ctx, repo.ReplaceTasksOptions{GoalID: g.ID, Tasks: normalized})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Breakdown ReplaceTasks: %v", err)
		return goal.BreakdownOutput{}, err
	}
	g.Tasks = stored

	uc.tryExportCalendar(ctx, g, stored)
	uc.invalidate(sc.UserID)

	return goal.BreakdownOutput{
		Goal:      g,
		Tasks:     stored,
		ChatReply: strings.TrimSpace(plan.ChatReply),
		Dropped:   dropped,
	}, nil
}

// validateTasks turns generated tasks into candidates with fresh IDs, so
// bundles can reference the tasks they absorb. Tasks without a title are
// dropped. An unreadable due date is treated as absent.
func (uc *implUseCase) validateTasks(ctx context.Context, generated []goal.GeneratedTask, now time.Time) ([]model.Task, int) {
	out := make([]model.Task, 0, len(generated))
	dropped := 0
	for _, gt := range generated {
		title := strings.TrimSpace(gt.Title)
		if title == "" {
			dropped++
			continue
		}

		t := model.Task{ID: uuid.NewString(), Title: title}
		if raw := strings.TrimSpace(gt.DueDate); raw != "" {
			due, err := uc.dateMath.ParseDue(raw, now)
			if err != nil {
				uc.l.Debugf(ctx, "uc.validateTasks: ignoring due date %q of %q: %v", raw, title, err)
			} else {
				t.DueDate = model.TimePtr(uc.cal.StartOfDay(due))
			}
		}
		if est := strings.TrimSpace(gt.EstimatedDuration); est != "" {
			t.EstimatedDuration = model.StringPtr(est)
		}
		out = append(out, t)
	}
	return out, dropped
}

// window is [max(today, start), deadline]. A goal without a deadline gets the
// default window length.
func (uc *implUseCase) window(g model.Goal) (time.Time, time.Time) {
	start := uc.today()
	if g.StartDate != nil && g.StartDate.After(start) {
		start = uc.cal.StartOfDay(*g.StartDate)
	}
	end := uc.cal.AddDays(start, uc.windowDays)
	if g.Deadline != nil {
		end = uc.cal.StartOfDay(*g.Deadline)
	}
	return start, end
}

func (uc *implUseCase) scheduleOptions() []schedule.Option {
	opts := []schedule.Option{
		schedule.WithCalendar(uc.cal),
		schedule.WithDefaultDuration(uc.defaultDuration),
	}
	if uc.strictCap {
		opts = append(opts, schedule.WithStrictCap())
	}
	return opts
}

// tryExportCalendar publishes the tasks to the calendar. Failures are logged only.
func (uc *implUseCase) tryExportCalendar(ctx context.Context, g model.Goal, tasks []model.Task) {
	if uc.exporter == nil {
		return
	}
	if err := uc.exporter.ExportTasks(ctx, g, tasks); err != nil {
		uc.l.Warnf(ctx, "uc.Breakdown ExportTasks: goal=%s: %v", g.ID, err)
	}
}
