package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/geotasks/internal/models"
)

// InitSchema creates the tasks table when it does not exist yet.
// It is safe to call on every start: an existing table and its rows are left untouched.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			title TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		);
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	r.log.DebugContext(ctx, "Tasks table is ready.")

	return nil
}

// InsertTask stores a new task and returns the identifier assigned by the database.
// Identifiers grow with every insert and are never handed out twice.
func (r *Repository) InsertTask(ctx context.Context, title string, coords models.Coordinates) (int64, error) {
	query := `
		INSERT INTO tasks (title, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var taskID int64
	if err := r.db.QueryRow(ctx, query, title, coords.Latitude, coords.Longitude).Scan(&taskID); err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	return taskID, nil
}

// ListTasks returns every stored task in insertion order.
// An empty table yields an empty, non-nil slice.
func (r *Repository) ListTasks(ctx context.Context) ([]models.Task, error) {
	query := `
		SELECT id, title, latitude, longitude
		FROM tasks
		ORDER BY id ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if errScan := rows.Scan(&task.ID, &task.Title, &task.Latitude, &task.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan task: %w", errScan)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Tasks have been fetched.", "count", len(tasks))

	return tasks, nil
}

// DeleteTask removes the task with the given identifier.
// A missing task is not an error; the returned flag reports whether a row was removed.
func (r *Repository) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	query := `
		DELETE FROM tasks
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}
