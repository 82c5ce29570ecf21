package memory

import (
	"context"
	"sort"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

func (r *implRepository) ReplaceTasks(ctx context.Context, opt repo.ReplaceTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[opt.GoalID]; !ok {
		r.l.Errorf(ctx, "goal/repository/memory.ReplaceTasks: unknown goal %s", opt.GoalID)
		return nil, repo.ErrFailedToInsert
	}

	for _, id := range r.goalTasks[opt.GoalID] {
		delete(r.tasks, id)
	}

	now := r.now()
	ids := make([]string, 0, len(opt.Tasks))
	out := make([]model.Task, 0, len(opt.Tasks))
	for _, t := range opt.Tasks {
		c := t.Clone()
		if c.ID == "" {
			c.ID = r.newID()
		}
		c.GoalID = opt.GoalID
		c.CreatedAt = now
		c.UpdatedAt = now

		r.tasks[c.ID] = c
		ids = append(ids, c.ID)
		out = append(out, c.Clone())
	}
	r.goalTasks[opt.GoalID] = ids
	return out, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Task
	for _, t := range r.tasks {
		if opt.GoalID != "" && t.GoalID != opt.GoalID {
			continue
		}
		if opt.UserID != "" && r.goals[t.GoalID].UserID != opt.UserID {
			continue
		}
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueFrom)) {
			continue
		}
		if opt.DueTo != nil && (t.DueDate == nil || t.DueDate.After(*opt.DueTo)) {
			continue
		}
		out = append(out, t.Clone())
	}
	sortTasks(out)
	return out, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.UserID != "" && r.goals[t.GoalID].UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t.Clone(), nil
}

func (r *implRepository) UpdateTaskCompletion(ctx context.Context, opt repo.UpdateTaskCompletionOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.IsCompleted = opt.IsCompleted
	t.UpdatedAt = r.now()
	r.tasks[opt.ID] = t
	return t.Clone(), nil
}

func (r *implRepository) ListTaskOwners(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for goalID, ids := range r.goalTasks {
		if len(ids) == 0 {
			continue
		}
		u := r.goals[goalID].UserID
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	sort.Strings(out)
	return out, nil
}

// sortTasks orders by due date, then title, with undated tasks last.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}
