package client

import (
	"context"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// TokenSession holds the current auth token. Both session.Session and
// session.PreferenceHolder satisfy it.
type TokenSession interface {
	Token() (models.AuthToken, bool)
	IsAuthenticated() bool
	Set(ctx context.Context, token models.AuthToken) error
	Clear(ctx context.Context) error
	Subscribe(fn func(authenticated bool)) func()
}

type Client interface {
	Register(ctx context.Context, username, password string) (models.AuthToken, error)
	Login(ctx context.Context, username, password string) (models.AuthToken, error)
	Logout(ctx context.Context) error

	CreateTrip(ctx context.Context, trip models.TripCreate) (models.Trip, error)
	GetTrips(ctx context.Context) ([]models.Trip, error)
	GetTrip(ctx context.Context, id models.TripID) (models.Trip, error)
	UpdateTrip(ctx context.Context, id models.TripID, trip models.TripUpdate) (models.Trip, error)
	DeleteTrip(ctx context.Context, id models.TripID) error

	CreateEvent(ctx context.Context, event models.EventCreate) (models.Event, error)
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id models.EventID) (models.Event, error)
	UpdateEvent(ctx context.Context, id models.EventID, event models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, id models.EventID) error

	CreateMedia(ctx context.Context, media models.MediaCreate) (models.Media, error)
	GetMedia(ctx context.Context) ([]models.Media, error)
	GetMediaByID(ctx context.Context, id models.MediaID) (models.Media, error)
	DeleteMedia(ctx context.Context, id models.MediaID) error

	Token() (models.AuthToken, bool)
	IsAuthenticated() bool
	Subscribe(fn func(authenticated bool)) func()
}
