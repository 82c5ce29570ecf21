package sqldb

import (
	"context"
	"database/sql"
	"errors"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

func (r *implRepository) CreateMood(ctx context.Context, opt repo.CreateMoodOptions) (model.MoodRecord, error) {
	m := model.MoodRecord{
		ID:     r.newID(),
		UserID: opt.UserID,
		Date:   r.cal.StartOfDay(opt.Date),
		Score:  opt.Score,
		Note:   opt.Note,
	}

	_, err := r.db.ExecContext(ctx, r.q(`INSERT INTO moods (id, user_id, date, score, note) VALUES (?, ?, ?, ?, ?)`),
		m.ID, m.UserID, r.cal.FormatDate(m.Date), m.Score, m.Note)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMood"), err)
		return model.MoodRecord{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListMoods(ctx context.Context, opt repo.ListMoodsOptions) ([]model.MoodRecord, error) {
	query := `SELECT id, user_id, date, score, note FROM moods WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.From != nil {
		query += ` AND date >= ?`
		args = append(args, r.cal.FormatDate(*opt.From))
	}
	if opt.To != nil {
		query += ` AND date <= ?`
		args = append(args, r.cal.FormatDate(*opt.To))
	}
	query += ` ORDER BY date, id`

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMoods"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var moods []model.MoodRecord
	for rows.Next() {
		var (
			m    model.MoodRecord
			date string
		)
		if err := rows.Scan(&m.ID, &m.UserID, &date, &m.Score, &m.Note); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMoods"), err)
			return nil, repo.ErrFailedToList
		}
		if m.Date, err = r.cal.ParseDate(date); err != nil {
			r.l.Errorf(ctx, "%s date: %v", r.dsn("ListMoods"), err)
			return nil, repo.ErrFailedToList
		}
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

func (r *implRepository) UpsertStats(ctx context.Context, stats model.ActivityStats) error {
	const query = `INSERT INTO activity_stats (user_id, week_completed, month_completed, computed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			week_completed = excluded.week_completed,
			month_completed = excluded.month_completed,
			computed_at = excluded.computed_at`

	_, err := r.db.ExecContext(ctx, r.q(query),
		stats.UserID, stats.WeekCompletedCount, stats.MonthCompletedCount, formatTimestamp(stats.ComputedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertStats"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) GetStats(ctx context.Context, userID string) (model.ActivityStats, error) {
	var (
		s          = model.ActivityStats{UserID: userID}
		computedAt string
	)
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT week_completed, month_completed, computed_at FROM activity_stats WHERE user_id = ?`), userID,
	).Scan(&s.WeekCompletedCount, &s.MonthCompletedCount, &computedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ActivityStats{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStats"), err)
		return model.ActivityStats{}, repo.ErrFailedToGet
	}
	if s.ComputedAt, err = parseTimestamp(computedAt); err != nil {
		r.l.Errorf(ctx, "%s computed_at: %v", r.dsn("GetStats"), err)
		return model.ActivityStats{}, repo.ErrFailedToGet
	}
	return s, nil
}
