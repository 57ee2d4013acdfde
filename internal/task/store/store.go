package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jgrattan/fieldhand/internal/task"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTaskColumns = `id, farm_id, crop_id, title, description, category, priority, due_date, completed`

func scanTask(s scanner) (*task.Task, error) {
	var t task.Task

	var cropID sql.NullInt64

	var description sql.NullString

	var category, priority string

	if err := s.Scan(
		&t.ID, &t.FarmID, &cropID, &t.Title, &description,
		&category, &priority, &t.DueDate, &t.Completed,
	); err != nil {
		return nil, err
	}

	t.CropID = cropID.Int64
	t.Description = description.String
	t.Category = task.Category(category)
	t.Priority = task.Priority(priority)

	return &t, nil
}

// nullableID maps a zero id to NULL so optional crop references stay
// honest in the schema.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func (s *Store) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (farm_id, crop_id, title, description, category, priority, due_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		t.FarmID, nullableID(t.CropID), t.Title, t.Description,
		t.Category, t.Priority, t.DueDate, t.Completed,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("getting task: %w", err)
	}

	return t, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]*task.Task, error) {
	return s.list(ctx, `SELECT `+selectTaskColumns+` FROM tasks ORDER BY id`)
}

func (s *Store) ListTasksByFarm(ctx context.Context, farmID int64) ([]*task.Task, error) {
	return s.list(ctx, `SELECT `+selectTaskColumns+` FROM tasks WHERE farm_id = $1 ORDER BY id`, farmID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET farm_id = $1, crop_id = $2, title = $3, description = $4,
		    category = $5, priority = $6, due_date = $7, completed = $8
		WHERE id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		t.FarmID, nullableID(t.CropID), t.Title, t.Description,
		t.Category, t.Priority, t.DueDate, t.Completed, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}

	return nil
}
