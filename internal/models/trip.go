package models

import "time"

// TripID is the server-assigned identifier of a Trip.
type TripID int64

// TripKeys are the fields every Trip response must carry.
var TripKeys = []string{"id", "name", "start_date", "end_date"}

// Trip is a journey with an ordered list of events.
type Trip struct {
	ID        TripID    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Events    []Event   `json:"events"`
}

// TripCreate is the body of POST /trips.
type TripCreate struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// TripUpdate is the body of PUT /trips/{id}. It replaces every mutable field.
type TripUpdate struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
