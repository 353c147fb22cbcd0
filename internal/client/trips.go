package client

import (
	"context"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

func (c *HTTPClient) CreateTrip(ctx context.Context, trip models.TripCreate) (models.Trip, error) {
	body, err := jsonPayload(trip)
	if err != nil {
		return models.Trip{}, err
	}
	return send[models.Trip](ctx, c, opCreateTrip, body)
}

func (c *HTTPClient) GetTrips(ctx context.Context) ([]models.Trip, error) {
	return send[[]models.Trip](ctx, c, opGetTrips, nil)
}

func (c *HTTPClient) GetTrip(ctx context.Context, id models.TripID) (models.Trip, error) {
	return send[models.Trip](ctx, c, opGetTrip, nil, id)
}

func (c *HTTPClient) UpdateTrip(ctx context.Context, id models.TripID, trip models.TripUpdate) (models.Trip, error) {
	body, err := jsonPayload(trip)
	if err != nil {
		return models.Trip{}, err
	}
	return send[models.Trip](ctx, c, opUpdateTrip, body, id)
}

func (c *HTTPClient) DeleteTrip(ctx context.Context, id models.TripID) error {
	return sendNoContent(ctx, c, opDeleteTrip, id)
}
