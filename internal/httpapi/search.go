package httpapi

import (
	"errors"
	"net/http"

	"github.com/UnknownOlympus/geotasks/internal/geocoding"
	"github.com/UnknownOlympus/geotasks/internal/service"
	"github.com/gin-gonic/gin"
)

type searchResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (h *handler) handleSearch(c *gin.Context) {
	coords, err := h.locator.Search(c, c.Query("q"))
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		abort(c, newBadRequestError("query parameter q is required"))
		return
	case errors.Is(err, geocoding.ErrNoResults):
		abort(c, newAPIError(http.StatusNotFound, "location not found"))
		return
	case err != nil:
		abort(c, newAPIError(http.StatusBadGateway, "geocoding provider failed"))
		return
	}

	c.JSON(http.StatusOK, searchResponse{Lat: coords.Latitude, Lng: coords.Longitude})
}
