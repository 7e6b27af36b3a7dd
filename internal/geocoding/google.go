package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/geotasks/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves location queries with the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = fmt.Errorf("get empty response from Google Maps API: %w", ErrNoResults)

// NewGoogleProvider wraps an already configured Google Maps client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode returns the location of the first Google Maps result for the query.
// The maps client reports ZERO_RESULTS as an empty slice, which maps to ErrEmptyResponse.
func (gp *GoogleProvider) Geocode(ctx context.Context, query string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "query", query)

	req := maps.GeocodingRequest{Address: query}
	results, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}
	location := results[0].Geometry.Location

	return &models.Coordinates{Latitude: location.Lat, Longitude: location.Lng}, nil
}
