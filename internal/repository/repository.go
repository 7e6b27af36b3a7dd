package repository

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"

	"github.com/UnknownOlympus/geotasks/internal/config"
	"github.com/UnknownOlympus/geotasks/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database is the subset of *pgxpool.Pool used by the repository.
// Every call borrows a pooled connection for a single statement and hands it
// back before returning, so no connection outlives the operation that used it.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is the storage contract for tasks.
type Interface interface {
	InitSchema(ctx context.Context) error
	InsertTask(ctx context.Context, title string, coords models.Coordinates) (int64, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) (bool, error)
	Ping(ctx context.Context) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase opens a pgx connection pool for the given configuration and
// verifies it with a ping.
func NewDatabase(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// ConnString builds a postgres:// URL from the configuration.
func ConnString(cfg config.PostgresConfig) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   cfg.Name,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{cfg.SSLMode}}.Encode()
	}

	return dsn.String()
}
