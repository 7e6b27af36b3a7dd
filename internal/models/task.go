package models

// Task is a titled reminder pinned to a geographical point.
// The ID is assigned by storage on insertion and never changes afterwards.
type Task struct {
	ID        int64   // ID is the unique identifier of the task.
	Title     string  // Title is the user-supplied text of the task.
	Latitude  float64 // Latitude of the point the task is pinned to.
	Longitude float64 // Longitude of the point the task is pinned to.
}

// Coordinates returns the point the task is pinned to.
func (t Task) Coordinates() Coordinates {
	return Coordinates{Latitude: t.Latitude, Longitude: t.Longitude}
}
