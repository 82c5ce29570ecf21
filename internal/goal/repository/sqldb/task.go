package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

const taskColumns = `t.id, t.goal_id, t.title, t.due_date, t.is_completed, t.estimated_duration, t.bundled_from, t.created_at, t.updated_at`

// ReplaceTasks deletes the goal's tasks and inserts the new list in one transaction.
func (r *implRepository) ReplaceTasks(ctx context.Context, opt repo.ReplaceTasksOptions) ([]model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM tasks WHERE goal_id = ?`), opt.GoalID); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceTasks"), err)
		return nil, repo.ErrFailedToInsert
	}

	const insert = `INSERT INTO tasks (id, goal_id, title, due_date, is_completed, estimated_duration, bundled_from, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, r.q(insert))
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("ReplaceTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer stmt.Close()

	now := r.now().UTC()
	out := make([]model.Task, 0, len(opt.Tasks))
	for _, t := range opt.Tasks {
		c := t.Clone()
		if c.ID == "" {
			c.ID = r.newID()
		}
		c.GoalID = opt.GoalID
		c.CreatedAt = now
		c.UpdatedAt = now

		_, err := stmt.ExecContext(ctx,
			c.ID, c.GoalID, c.Title, r.nullDate(c.DueDate), c.IsCompleted,
			nullString(c.EstimatedDuration), encodeIDs(c.BundledFrom),
			formatTimestamp(c.CreatedAt), formatTimestamp(c.UpdatedAt),
		)
		if err != nil {
			r.l.Errorf(ctx, "%s insert %s: %v", r.dsn("ReplaceTasks"), c.ID, err)
			return nil, repo.ErrFailedToInsert
		}
		out = append(out, c)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return out, nil
}

// ListTasks returns tasks matching the filters, ordered by due date then title.
// Undated tasks sort last.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var conds []string
	var args []any
	if opt.UserID != "" {
		conds = append(conds, "g.user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.GoalID != "" {
		conds = append(conds, "t.goal_id = ?")
		args = append(args, opt.GoalID)
	}
	if opt.DueFrom != nil {
		conds = append(conds, "t.due_date >= ?")
		args = append(args, r.cal.FormatDate(*opt.DueFrom))
	}
	if opt.DueTo != nil {
		conds = append(conds, "t.due_date <= ?")
		args = append(args, r.cal.FormatDate(*opt.DueTo))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t JOIN goals g ON g.id = t.goal_id`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY t.due_date IS NULL, t.due_date, t.title, t.id`

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetOneTask returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t JOIN goals g ON g.id = t.goal_id WHERE t.id = ?`
	args := []any{opt.ID}
	if opt.UserID != "" {
		query += ` AND g.user_id = ?`
		args = append(args, opt.UserID)
	}

	t, err := r.scanTask(r.db.QueryRowContext(ctx, r.q(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// UpdateTaskCompletion sets is_completed and returns the updated Task.
func (r *implRepository) UpdateTaskCompletion(ctx context.Context, opt repo.UpdateTaskCompletionOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, r.q(`UPDATE tasks SET is_completed = ?, updated_at = ? WHERE id = ?`),
		opt.IsCompleted, formatTimestamp(r.now()), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskCompletion"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// ListTaskOwners returns every user that owns at least one task.
func (r *implRepository) ListTaskOwners(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT g.user_id FROM goals g JOIN tasks t ON t.goal_id = g.id ORDER BY g.user_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTaskOwners"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		due, est, bundled    sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&t.ID, &t.GoalID, &t.Title, &due, &t.IsCompleted, &est, &bundled, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}

	var err error
	if t.DueDate, err = r.parseNullDate(due); err != nil {
		return model.Task{}, err
	}
	t.EstimatedDuration = stringPtr(est)
	if t.BundledFrom, err = decodeIDs(bundled); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return model.Task{}, err
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
