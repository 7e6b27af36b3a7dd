package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/UnknownOlympus/geotasks/internal/metrics"
	"github.com/UnknownOlympus/geotasks/internal/models"
	"github.com/UnknownOlympus/geotasks/internal/repository"
)

// TaskService implements the task use-cases on top of the repository.
type TaskService struct {
	log     *slog.Logger
	repo    repository.Interface
	metrics *metrics.Metrics
}

func NewTaskService(log *slog.Logger, repo repository.Interface, metrics *metrics.Metrics) *TaskService {
	return &TaskService{log: log, repo: repo, metrics: metrics}
}

// Add stores a task and returns its identifier.
func (ts *TaskService) Add(ctx context.Context, title string, coords models.Coordinates) (int64, error) {
	taskID, err := ts.repo.InsertTask(ctx, title, coords)
	if err != nil {
		ts.log.ErrorContext(ctx, "Failed to save task", "error", err)
		return 0, err
	}

	ts.metrics.TasksSaved.Inc()
	ts.log.InfoContext(ctx, "Task saved", "task", taskID)

	return taskID, nil
}

// List returns every stored task.
func (ts *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := ts.repo.ListTasks(ctx)
	if err != nil {
		ts.log.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}

	return tasks, nil
}

// Delete removes the task if it exists. Deleting an unknown task succeeds.
func (ts *TaskService) Delete(ctx context.Context, taskID int64) error {
	deleted, err := ts.repo.DeleteTask(ctx, taskID)
	if err != nil {
		ts.log.ErrorContext(ctx, "Failed to delete task", "task", taskID, "error", err)
		return err
	}

	ts.metrics.TasksDeleted.WithLabelValues(strconv.FormatBool(deleted)).Inc()
	if !deleted {
		ts.log.InfoContext(ctx, "Task to delete does not exist", "task", taskID)
		return nil
	}
	ts.log.InfoContext(ctx, "Task deleted", "task", taskID)

	return nil
}
