package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/geotasks/internal/config"
	"github.com/UnknownOlympus/geotasks/internal/geocoding"
	"github.com/UnknownOlympus/geotasks/internal/httpapi"
	"github.com/UnknownOlympus/geotasks/internal/metrics"
	"github.com/UnknownOlympus/geotasks/internal/repository"
	"github.com/UnknownOlympus/geotasks/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// pinger reports whether the storage backend is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	// Canceled on SIGINT or SIGTERM to start a graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	// Create a separate registry for the application metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	pool, err := repository.NewDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool, logger)
	if err = repo.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}

	routerOpts := httpapi.Options{
		Logger:       logger,
		Metrics:      appMetrics,
		Tasks:        service.NewTaskService(logger, repo, appMetrics),
		TemplatesDir: cfg.TemplatesDir,
		StaticDir:    cfg.StaticDir,
		CORSOrigins:  cfg.CORSOrigins,
	}

	if cfg.Geocoder.Provider != config.GeocoderDisabled {
		geoProvider, errProvider := geocoding.NewProvider(geocoding.ProviderConfig{
			Type:      geocoding.ProviderType(cfg.Geocoder.Provider),
			APIKey:    cfg.Geocoder.APIKey,
			RateLimit: cfg.Geocoder.RateLimit,
			Logger:    logger,
		})
		if errProvider != nil {
			log.Fatalf("Failed to create geocoding provider: %v", errProvider)
		}
		routerOpts.Locator = service.NewGeocodingService(logger, geoProvider, cfg.Geocoder.Provider, appMetrics)
		logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Geocoder.Provider)
	}

	if cfg.Env != envLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      httpapi.NewRouter(routerOpts),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	monitoringServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.MonitoringPort),
		Handler:      newMonitoringHandler(ctx, logger, reg, repo),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go serve(ctx, logger, "api", apiServer, stop)
	go serve(ctx, logger, "monitoring", monitoringServer, stop)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	for _, srv := range []*http.Server{apiServer, monitoringServer} {
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			logger.ErrorContext(shutdownCtx, "Server shutdown failed", "addr", srv.Addr, "error", errShutdown)
		}
	}

	logger.InfoContext(shutdownCtx, "Application stopped gracefully.")
}

// serve runs the server until it is shut down. Any other failure stops the application.
func serve(ctx context.Context, log *slog.Logger, name string, srv *http.Server, stop context.CancelFunc) {
	log.InfoContext(ctx, "Starting server", "name", name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Server failed", "name", name, "error", err)
		stop()
	}
}

// newMonitoringHandler serves the health check and the Prometheus metrics.
func newMonitoringHandler(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, db pinger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, req *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if err := db.Ping(req.Context()); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		if _, err := writer.Write([]byte(body)); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", status)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}

	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelWarn,
			ReplaceAttr: dropTime,
		}))
	default:
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelError,
			ReplaceAttr: dropTime,
		}))
		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))

		return logger
	}
}
