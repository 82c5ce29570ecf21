package usecase

import (
	"context"
	"strings"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

// CreateGoal stores a new goal. The start defaults to today and the deadline
// to start plus the default window. A deadline before the start is pushed out
// to start plus the window as well.
func (uc *implUseCase) CreateGoal(ctx context.Context, sc model.Scope, input goal.CreateGoalInput) (goal.CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return goal.CreateGoalOutput{}, goal.ErrEmptyTitle
	}

	start := uc.today()
	if input.StartDate != nil {
		start = uc.cal.StartOfDay(*input.StartDate)
	}
	deadline := uc.cal.AddDays(start, uc.windowDays)
	if input.Deadline != nil {
		deadline = uc.cal.StartOfDay(*input.Deadline)
	}
	if start.After(deadline) {
		deadline = uc.cal.AddDays(start, uc.windowDays)
	}

	g, err := uc.repo.CreateGoal(ctx, repo.CreateGoalOptions{
		UserID:    sc.UserID,
		Title:     title,
		Icon:      coalesce(input.Icon, DefaultIcon),
		ColorHex:  coalesce(input.ColorHex, DefaultColorHex),
		StartDate: model.TimePtr(start),
		Deadline:  model.TimePtr(deadline),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateGoal CreateGoal: %v", err)
		return goal.CreateGoalOutput{}, err
	}

	return goal.CreateGoalOutput{Goal: g}, nil
}

// ListGoals returns the user's goals with their tasks attached.
func (uc *implUseCase) ListGoals(ctx context.Context, sc model.Scope) (goal.ListGoalsOutput, error) {
	goals, err := uc.repo.ListGoals(ctx, repo.ListGoalsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListGoals ListGoals: %v", err)
		return goal.ListGoalsOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListGoals ListTasks: %v", err)
		return goal.ListGoalsOutput{}, err
	}

	byGoal := make(map[string][]model.Task, len(goals))
	for _, t := range tasks {
		byGoal[t.GoalID] = append(byGoal[t.GoalID], t)
	}
	for i := range goals {
		goals[i].Tasks = byGoal[goals[i].ID]
	}

	return goal.ListGoalsOutput{Goals: goals}, nil
}

// DetailGoal returns one goal with its tasks. Returns ErrGoalNotFound when missing.
func (uc *implUseCase) DetailGoal(ctx context.Context, sc model.Scope, id string) (goal.DetailGoalOutput, error) {
	g, err := uc.getGoal(ctx, sc, id)
	if err != nil {
		return goal.DetailGoalOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, GoalID: g.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailGoal ListTasks: %v", err)
		return goal.DetailGoalOutput{}, err
	}
	g.Tasks = tasks

	return goal.DetailGoalOutput{Goal: g}, nil
}

// DeleteGoal removes a goal and its tasks. Returns ErrGoalNotFound when missing.
func (uc *implUseCase) DeleteGoal(ctx context.Context, sc model.Scope, id string) error {
	g, err := uc.getGoal(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteGoal(ctx, repo.DeleteGoalOptions{ID: g.ID, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteGoal DeleteGoal: %v", err)
		return err
	}
	uc.invalidate(sc.UserID)
	return nil
}

func (uc *implUseCase) getGoal(ctx context.Context, sc model.Scope, id string) (model.Goal, error) {
	g, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getGoal GetOneGoal: %v", err)
		return model.Goal{}, err
	}
	if g.ID == "" {
		return model.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}
