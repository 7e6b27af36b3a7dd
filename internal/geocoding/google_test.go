package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/geotasks/internal/geocoding"
	"github.com/UnknownOlympus/geotasks/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleProvider_Geocode(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := geocoding.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		query := "some invalid place"
		req := &maps.GeocodingRequest{Address: query}

		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		coords, err := provider.Geocode(ctx, query)

		require.Nil(t, coords)
		require.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, geocoding.ErrNoResults)
	})

	t.Run("api returns empty response", func(t *testing.T) {
		query := "some invalid place"
		req := &maps.GeocodingRequest{Address: query}

		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := provider.Geocode(ctx, query)

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		assert.ErrorIs(t, err, geocoding.ErrNoResults)
	})

	t.Run("successful geocoding", func(t *testing.T) {
		query := "Times Square, New York"
		req := &maps.GeocodingRequest{Address: query}
		response := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 40.758, Lng: -73.9855}}},
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 1, Lng: 1}}},
		}

		mockClient.On("Geocode", ctx, req).Return(response, nil).Once()

		coords, err := provider.Geocode(ctx, query)

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 40.758, coords.Latitude, 0.0001)
		assert.InEpsilon(t, -73.9855, coords.Longitude, 0.0001)
	})
}
