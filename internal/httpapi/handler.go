package httpapi

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/geotasks/internal/models"
)

// TaskService is the set of task use-cases the API exposes.
type TaskService interface {
	Add(ctx context.Context, title string, coords models.Coordinates) (int64, error)
	List(ctx context.Context) ([]models.Task, error)
	Delete(ctx context.Context, taskID int64) error
}

// LocationSearcher resolves a free-text query to coordinates.
type LocationSearcher interface {
	Search(ctx context.Context, query string) (*models.Coordinates, error)
}

type handler struct {
	log      *slog.Logger
	tasks    TaskService
	locator  LocationSearcher
	hasIndex bool
}
