package models

import "time"

// EventID is the server-assigned identifier of an Event.
type EventID int64

// EventKeys are the fields every Event response must carry.
var EventKeys = []string{"id", "trip_id", "name", "date"}

// Event is a stop or moment within a Trip.
type Event struct {
	ID                     EventID   `json:"id"`
	TripID                 TripID    `json:"trip_id"`
	Name                   string    `json:"name"`
	Note                   *string   `json:"note"`
	Date                   time.Time `json:"date"`
	Location               *Location `json:"location"`
	TransitionFromPrevious *string   `json:"transition_from_previous"`
	Media                  []Media   `json:"media"`
}

// EventCreate is the body of POST /events. Absent optional fields are omitted.
type EventCreate struct {
	TripID                 TripID    `json:"trip_id"`
	Name                   string    `json:"name"`
	Note                   *string   `json:"note,omitempty"`
	Date                   time.Time `json:"date"`
	Location               *Location `json:"location,omitempty"`
	TransitionFromPrevious *string   `json:"transition_from_previous,omitempty"`
}

// EventUpdate is the body of PUT /events/{id}. Every field is sent, absent
// optionals as null, so the server replaces the whole record.
type EventUpdate struct {
	Name                   string    `json:"name"`
	Note                   *string   `json:"note"`
	Date                   time.Time `json:"date"`
	Location               *Location `json:"location"`
	TransitionFromPrevious *string   `json:"transition_from_previous"`
}

// Location is a point on the map with an optional human-readable address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
}

// Optional returns nil for an empty string and a pointer to s otherwise.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
