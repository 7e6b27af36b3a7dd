package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/geotasks/internal/models"
	"golang.org/x/time/rate"
)

// Provider is an interface that defines a method for resolving a free-text location query.
// The Geocode method takes a context and a query string as input,
// and returns the coordinates of the best match and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.Coordinates, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNoResults is wrapped by every provider when a query matches no location.
var ErrNoResults = errors.New("no location matches the query")

// newLimiter allows rateLimit requests per second. Zero or less disables limiting.
func newLimiter(rateLimit int) *rate.Limiter {
	if rateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
}
