package memory

import (
	"context"
	"sort"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

func (r *implRepository) CreateMood(ctx context.Context, opt repo.CreateMoodOptions) (model.MoodRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := model.MoodRecord{
		ID:     r.newID(),
		UserID: opt.UserID,
		Date:   opt.Date,
		Score:  opt.Score,
		Note:   opt.Note,
	}
	r.moods = append(r.moods, m)
	return m, nil
}

func (r *implRepository) ListMoods(ctx context.Context, opt repo.ListMoodsOptions) ([]model.MoodRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.MoodRecord
	for _, m := range r.moods {
		if opt.UserID != "" && m.UserID != opt.UserID {
			continue
		}
		if opt.From != nil && m.Date.Before(*opt.From) {
			continue
		}
		if opt.To != nil && m.Date.After(*opt.To) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *implRepository) UpsertStats(ctx context.Context, stats model.ActivityStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats[stats.UserID] = stats
	return nil
}

func (r *implRepository) GetStats(ctx context.Context, userID string) (model.ActivityStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats[userID], nil
}
