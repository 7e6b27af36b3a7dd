package httpapi

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/geotasks/internal/models"
)

// addTaskRequest uses pointers so that absent and null fields fail the required check
// while empty titles and zero coordinates are still accepted.
type addTaskRequest struct {
	Title *string  `binding:"required"`
	Lat   *float64 `binding:"required"`
	Lng   *float64 `binding:"required"`
}

// UnmarshalJSON accepts lat and lng as JSON numbers or numeric strings. Browsers
// that take the position from a search result send them as strings.
func (r *addTaskRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title *string         `json:"title"`
		Lat   json.RawMessage `json:"lat"`
		Lng   json.RawMessage `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lat, err := parseCoordinate("lat", raw.Lat)
	if err != nil {
		return err
	}
	lng, err := parseCoordinate("lng", raw.Lng)
	if err != nil {
		return err
	}

	*r = addTaskRequest{Title: raw.Title, Lat: lat, Lng: lng}

	return nil
}

func (r addTaskRequest) coordinates() models.Coordinates {
	return models.Coordinates{Latitude: *r.Lat, Longitude: *r.Lng}
}

// parseCoordinate returns nil for an absent or null value.
func parseCoordinate(field string, raw json.RawMessage) (*float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		var text string
		if errText := json.Unmarshal(raw, &text); errText != nil {
			return nil, invalidFieldError{field: field}
		}

		value, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, invalidFieldError{field: field}
		}
	}

	// ParseFloat accepts NaN and Inf, which JSON cannot encode back.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, invalidFieldError{field: field}
	}

	return &value, nil
}

// taskRow is the positional wire form of a task: [id, title, latitude, longitude].
type taskRow models.Task

func (t taskRow) MarshalJSON() ([]byte, error) {
	coords := models.Task(t).Coordinates()
	return json.Marshal([]any{t.ID, t.Title, coords.Latitude, coords.Longitude})
}

func newTaskRows(tasks []models.Task) []taskRow {
	rows := make([]taskRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, taskRow(task))
	}

	return rows
}
