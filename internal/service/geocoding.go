package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/geotasks/internal/geocoding"
	"github.com/UnknownOlympus/geotasks/internal/metrics"
	"github.com/UnknownOlympus/geotasks/internal/models"
)

// ErrEmptyQuery is returned when a location search has nothing to look up.
var ErrEmptyQuery = errors.New("search query is empty")

// GeocodingService resolves free-text location queries through a geocoding provider
// and records how the provider behaves.
type GeocodingService struct {
	log          *slog.Logger       // Logger for logging service activities
	provider     geocoding.Provider // Geocoding provider for external geocoding services
	providerName string             // Name of the provider for metrics labeling
	metrics      *metrics.Metrics   // Metrics for tracking provider performance
}

// NewGeocodingService creates a new instance of GeocodingService.
func NewGeocodingService(
	log *slog.Logger,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
) *GeocodingService {
	return &GeocodingService{
		log:          log,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
	}
}

// Search returns the coordinates of the best match for the query.
// A query without matches yields an error wrapping geocoding.ErrNoResults.
func (gs *GeocodingService) Search(ctx context.Context, query string) (*models.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	startTime := time.Now()
	coords, err := gs.provider.Geocode(ctx, query)
	gs.metrics.GeocodeSeconds.WithLabelValues(gs.providerName).Observe(time.Since(startTime).Seconds())

	switch {
	case errors.Is(err, geocoding.ErrNoResults):
		gs.metrics.GeocodeNoResults.Inc()
		gs.log.InfoContext(ctx, "No location found", "query", query)
		return nil, err
	case err != nil:
		gs.metrics.GeocodeErrors.WithLabelValues(gs.providerName).Inc()
		gs.log.ErrorContext(ctx, "Failed to geocode", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search location: %w", err)
	}

	gs.log.DebugContext(ctx, "Location found", "query", query, "lat", coords.Latitude, "lon", coords.Longitude)

	return coords, nil
}
