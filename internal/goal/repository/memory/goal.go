package memory

import (
	"context"
	"sort"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

func (r *implRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := model.Goal{
		ID:        r.newID(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Icon:      opt.Icon,
		ColorHex:  opt.ColorHex,
		StartDate: opt.StartDate,
		Deadline:  opt.Deadline,
		CreatedAt: r.now(),
	}
	g = cloneGoal(g)
	r.goals[g.ID] = g
	return cloneGoal(g), nil
}

func (r *implRepository) GetOneGoal(ctx context.Context, opt repo.GetOneGoalOptions) (model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.goals {
		if opt.ID != "" && g.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && g.UserID != opt.UserID {
			continue
		}
		return cloneGoal(g), nil
	}
	return model.Goal{}, nil
}

func (r *implRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Goal
	for _, g := range r.goals {
		if opt.UserID != "" && g.UserID != opt.UserID {
			continue
		}
		out = append(out, cloneGoal(g))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *implRepository) DeleteGoal(ctx context.Context, opt repo.DeleteGoalOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.goals[opt.ID]
	if !ok || (opt.UserID != "" && g.UserID != opt.UserID) {
		return nil
	}
	for _, id := range r.goalTasks[opt.ID] {
		delete(r.tasks, id)
	}
	delete(r.goalTasks, opt.ID)
	delete(r.goals, opt.ID)
	return nil
}

func cloneGoal(g model.Goal) model.Goal {
	if g.StartDate != nil {
		g.StartDate = model.TimePtr(*g.StartDate)
	}
	if g.Deadline != nil {
		g.Deadline = model.TimePtr(*g.Deadline)
	}
	g.Tasks = nil
	return g
}
