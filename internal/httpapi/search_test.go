package httpapi_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/geotasks/internal/geocoding"
	"github.com/UnknownOlympus/geotasks/internal/httpapi"
	"github.com/UnknownOlympus/geotasks/internal/models"
	"github.com/UnknownOlympus/geotasks/internal/service"
	"github.com/UnknownOlympus/geotasks/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T, provider *mocks.Provider) *testServer {
	t.Helper()

	return newTestServer(t, func(opts *httpapi.Options) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		opts.Locator = service.NewGeocodingService(logger, provider, "nominatim", opts.Metrics)
	})
}

func TestSearch(t *testing.T) {
	t.Run("returns coordinates of the best match", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		provider.On("Geocode", mock.Anything, "Kyiv").
			Return(&models.Coordinates{Latitude: 50.45, Longitude: 30.52}, nil).Once()
		srv := newSearchServer(t, provider)

		rec := srv.do(t, http.MethodGet, "/search?q=%20Kyiv%20", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"lat":50.45,"lng":30.52}`, rec.Body.String())
	})

	t.Run("empty query", func(t *testing.T) {
		srv := newSearchServer(t, mocks.NewProvider(t))

		rec := srv.do(t, http.MethodGet, "/search?q=", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"query parameter q is required"}`, rec.Body.String())
	})

	t.Run("no match", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		provider.On("Geocode", mock.Anything, "Atlantis").
			Return(nil, fmt.Errorf("lookup: %w", geocoding.ErrNoResults)).Once()
		srv := newSearchServer(t, provider)

		rec := srv.do(t, http.MethodGet, "/search?q=Atlantis", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"location not found"}`, rec.Body.String())
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		provider.On("Geocode", mock.Anything, "Kyiv").Return(nil, assert.AnError).Once()
		srv := newSearchServer(t, provider)

		rec := srv.do(t, http.MethodGet, "/search?q=Kyiv", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":"geocoding provider failed"}`, rec.Body.String())
	})

	t.Run("route is absent without a geocoder", func(t *testing.T) {
		srv := newTestServer(t, nil)

		rec := srv.do(t, http.MethodGet, "/search?q=Kyiv", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
