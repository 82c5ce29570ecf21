package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

const goalColumns = `id, user_id, title, icon, color_hex, start_date, deadline, created_at`

// CreateGoal inserts a new Goal row and returns the created entity.
func (r *implRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (model.Goal, error) {
	g := model.Goal{
		ID:        r.newID(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Icon:      opt.Icon,
		ColorHex:  opt.ColorHex,
		StartDate: opt.StartDate,
		Deadline:  opt.Deadline,
		CreatedAt: r.now().UTC(),
	}

	const query = `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.q(query),
		g.ID, g.UserID, g.Title, g.Icon, g.ColorHex,
		r.nullDate(g.StartDate), r.nullDate(g.Deadline), formatTimestamp(g.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGoal"), err)
		return model.Goal{}, repo.ErrFailedToInsert
	}
	return g, nil
}

// GetOneGoal retrieves a single Goal by the provided filters (AND condition).
// Returns zero-value Goal (ID == "") when not found.
func (r *implRepository) GetOneGoal(ctx context.Context, opt repo.GetOneGoalOptions) (model.Goal, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	where := "1=1"
	if len(conds) > 0 {
		where = strings.Join(conds, " AND ")
	}

	query := `SELECT ` + goalColumns + ` FROM goals WHERE ` + where + ` LIMIT 1`
	g, err := r.scanGoal(r.db.QueryRowContext(ctx, r.q(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneGoal"), err)
		return model.Goal{}, repo.ErrFailedToGet
	}
	return g, nil
}

// ListGoals returns the user's goals, newest first.
func (r *implRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals`
	var args []any
	if opt.UserID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, opt.UserID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGoals"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListGoals"), err)
			return nil, repo.ErrFailedToList
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListGoals"), err)
		return nil, repo.ErrFailedToList
	}
	return goals, nil
}

// DeleteGoal removes a Goal and its tasks.
func (r *implRepository) DeleteGoal(ctx context.Context, opt repo.DeleteGoalOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteGoal"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, r.q(`DELETE FROM goals WHERE id = ? AND user_id = ?`), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteGoal"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM tasks WHERE goal_id = ?`), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s tasks: %v", r.dsn("DeleteGoal"), err)
		return repo.ErrFailedToDelete
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteGoal"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanGoal(row rowScanner) (model.Goal, error) {
	var (
		g               model.Goal
		start, deadline sql.NullString
		createdAt       string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Icon, &g.ColorHex, &start, &deadline, &createdAt); err != nil {
		return model.Goal{}, err
	}

	var err error
	if g.StartDate, err = r.parseNullDate(start); err != nil {
		return model.Goal{}, err
	}
	if g.Deadline, err = r.parseNullDate(deadline); err != nil {
		return model.Goal{}, err
	}
	if g.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}
