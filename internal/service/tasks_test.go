package service_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/UnknownOlympus/geotasks/internal/metrics"
	"github.com/UnknownOlympus/geotasks/internal/models"
	"github.com/UnknownOlympus/geotasks/internal/service"
	"github.com/UnknownOlympus/geotasks/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService(t *testing.T) {
	mockRepo := mocks.NewInterface(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	ctx := t.Context()
	svc := service.NewTaskService(logger, mockRepo, appMetrics)
	coords := models.Coordinates{Latitude: 1.0, Longitude: 2.0}

	t.Run("add stores task", func(t *testing.T) {
		mockRepo.On("InsertTask", ctx, "Buy milk", coords).Return(int64(1), nil).Once()

		taskID, err := svc.Add(ctx, "Buy milk", coords)

		require.NoError(t, err)
		assert.Equal(t, int64(1), taskID)
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.TasksSaved), 0)
	})

	t.Run("add propagates storage error", func(t *testing.T) {
		mockRepo.On("InsertTask", ctx, "Buy milk", coords).Return(int64(0), assert.AnError).Once()

		_, err := svc.Add(ctx, "Buy milk", coords)

		require.ErrorIs(t, err, assert.AnError)
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.TasksSaved), 0)
	})

	t.Run("list returns tasks", func(t *testing.T) {
		stored := []models.Task{{ID: 1, Title: "Buy milk", Latitude: 1.0, Longitude: 2.0}}
		mockRepo.On("ListTasks", ctx).Return(stored, nil).Once()

		tasks, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, tasks)
	})

	t.Run("list propagates storage error", func(t *testing.T) {
		mockRepo.On("ListTasks", ctx).Return(nil, assert.AnError).Once()

		tasks, err := svc.List(ctx)

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, tasks)
	})

	t.Run("delete existing task", func(t *testing.T) {
		mockRepo.On("DeleteTask", ctx, int64(1)).Return(true, nil).Once()

		require.NoError(t, svc.Delete(ctx, 1))
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.TasksDeleted.WithLabelValues("true")), 0)
	})

	t.Run("delete missing task succeeds", func(t *testing.T) {
		mockRepo.On("DeleteTask", ctx, int64(99)).Return(false, nil).Once()

		require.NoError(t, svc.Delete(ctx, 99))
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.TasksDeleted.WithLabelValues("false")), 0)
	})

	t.Run("delete propagates storage error", func(t *testing.T) {
		mockRepo.On("DeleteTask", ctx, int64(1)).Return(false, assert.AnError).Once()

		require.ErrorIs(t, svc.Delete(ctx, 1), assert.AnError)
	})
}
