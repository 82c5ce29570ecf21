package usecase

import (
	"context"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

// ToggleTask flips a task's completion flag. Returns ErrTaskNotFound when the
// task doesn't exist or belongs to another user.
func (uc *implUseCase) ToggleTask(ctx context.Context, sc model.Scope, taskID string) (goal.ToggleTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleTask GetOneTask: %v", err)
		return goal.ToggleTaskOutput{}, err
	}
	if t.ID == "" {
		return goal.ToggleTaskOutput{}, goal.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTaskCompletion(ctx, repo.UpdateTaskCompletionOptions{
		ID:          t.ID,
		IsCompleted: !t.IsCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleTask UpdateTaskCompletion: %v", err)
		return goal.ToggleTaskOutput{}, err
	}
	if updated.ID == "" {
		return goal.ToggleTaskOutput{}, goal.ErrTaskNotFound
	}

	uc.invalidate(sc.UserID)
	return goal.ToggleTaskOutput{Task: updated}, nil
}

// TasksForDay lists the user's tasks due on one calendar day, today by default.
func (uc *implUseCase) TasksForDay(ctx context.Context, sc model.Scope, input goal.TasksForDayInput) (goal.TasksForDayOutput, error) {
	day := uc.today()
	if input.Day != nil {
		day = uc.cal.StartOfDay(*input.Day)
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		DueFrom: model.TimePtr(day),
		DueTo:   model.TimePtr(day),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TasksForDay ListTasks: %v", err)
		return goal.TasksForDayOutput{}, err
	}

	return goal.TasksForDayOutput{Day: day, Tasks: tasks}, nil
}
