package client

import (
	"fmt"
	"net/http"
)

// successPolicy decides which status codes count as success.
type successPolicy int

const (
	// exactlyOK accepts only 200.
	exactlyOK successPolicy = iota
	// any2xx accepts 200-299.
	any2xx
	// anyStatus accepts every response; only transport failures are errors.
	anyStatus
)

func (p successPolicy) accepts(code int) bool {
	switch p {
	case exactlyOK:
		return code == http.StatusOK
	case anyStatus:
		return true
	default:
		return code >= 200 && code < 300
	}
}

type op int

const (
	opRegister op = iota
	opLogin
	opCreateTrip
	opGetTrips
	opGetTrip
	opUpdateTrip
	opDeleteTrip
	opCreateEvent
	opGetEvents
	opGetEvent
	opUpdateEvent
	opDeleteEvent
	opCreateMedia
	opGetMedia
	opGetMediaByID
	opDeleteMedia
)

type endpoint struct {
	method  string
	path    string // fmt template, filled with the call's ids
	success successPolicy
	// discard skips decoding; the body is drained and dropped.
	discard bool
}

func (e endpoint) resolvePath(args ...any) string {
	if len(args) == 0 {
		return e.path
	}
	return fmt.Sprintf(e.path, args...)
}

var endpoints = map[op]endpoint{
	opRegister: {method: http.MethodPost, path: "/register", success: exactlyOK},
	opLogin:    {method: http.MethodPost, path: "/token", success: exactlyOK},

	opCreateTrip: {method: http.MethodPost, path: "/trips", success: exactlyOK},
	opGetTrips:   {method: http.MethodGet, path: "/trips", success: exactlyOK},
	opGetTrip:    {method: http.MethodGet, path: "/trips/%d", success: exactlyOK},
	opUpdateTrip: {method: http.MethodPut, path: "/trips/%d", success: exactlyOK},
	opDeleteTrip: {method: http.MethodDelete, path: "/trips/%d", success: anyStatus, discard: true},

	opCreateEvent: {method: http.MethodPost, path: "/events", success: exactlyOK},
	opGetEvents:   {method: http.MethodGet, path: "/events", success: exactlyOK},
	opGetEvent:    {method: http.MethodGet, path: "/events/%d", success: exactlyOK},
	opUpdateEvent: {method: http.MethodPut, path: "/events/%d", success: exactlyOK},
	opDeleteEvent: {method: http.MethodDelete, path: "/events/%d", success: anyStatus, discard: true},

	opCreateMedia:  {method: http.MethodPost, path: "/media", success: any2xx},
	opGetMedia:     {method: http.MethodGet, path: "/media", success: any2xx},
	opGetMediaByID: {method: http.MethodGet, path: "/media/%d", success: any2xx},
	opDeleteMedia:  {method: http.MethodDelete, path: "/media/%d", success: anyStatus, discard: true},
}
