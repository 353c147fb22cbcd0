package client

import (
	"context"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

func (c *HTTPClient) CreateEvent(ctx context.Context, event models.EventCreate) (models.Event, error) {
	body, err := jsonPayload(event)
	if err != nil {
		return models.Event{}, err
	}
	return send[models.Event](ctx, c, opCreateEvent, body)
}

func (c *HTTPClient) GetEvents(ctx context.Context) ([]models.Event, error) {
	return send[[]models.Event](ctx, c, opGetEvents, nil)
}

func (c *HTTPClient) GetEvent(ctx context.Context, id models.EventID) (models.Event, error) {
	return send[models.Event](ctx, c, opGetEvent, nil, id)
}

// UpdateEvent replaces every mutable field; nil optionals clear them on the server.
func (c *HTTPClient) UpdateEvent(ctx context.Context, id models.EventID, event models.EventUpdate) (models.Event, error) {
	body, err := jsonPayload(event)
	if err != nil {
		return models.Event{}, err
	}
	return send[models.Event](ctx, c, opUpdateEvent, body, id)
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id models.EventID) error {
	return sendNoContent(ctx, c, opDeleteEvent, id)
}
