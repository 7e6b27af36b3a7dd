package httpapi

import (
	"log/slog"

	"github.com/UnknownOlympus/geotasks/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Options configures the API router.
type Options struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Tasks        TaskService
	Locator      LocationSearcher // Locator is optional; without it /search is not registered.
	TemplatesDir string
	StaticDir    string
	CORSOrigins  []string // CORSOrigins is optional; empty disables CORS headers.
}

// NewRouter builds the gin engine serving the entry page and the task API.
// The gin mode is left to the caller.
func NewRouter(opts Options) *gin.Engine {
	h := &handler{
		log:     opts.Logger,
		tasks:   opts.Tasks,
		locator: opts.Locator,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(opts.Logger))
	router.Use(requestMetrics(opts.Metrics))
	if len(opts.CORSOrigins) > 0 {
		router.Use(corsMiddleware(opts.CORSOrigins))
	}

	h.hasIndex = h.installIndex(router, opts.TemplatesDir)
	router.GET("/", h.handleIndex)
	if dirExists(opts.StaticDir) {
		router.Static("/static", opts.StaticDir)
	}

	router.POST("/add", h.handleAddTask)
	router.GET("/tasks", h.handleListTasks)
	router.DELETE("/delete/:id", h.handleDeleteTask)

	if opts.Locator != nil {
		router.GET("/search", h.handleSearch)
	}

	return router
}
