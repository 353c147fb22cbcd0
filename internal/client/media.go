package client

import (
	"context"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// CreateMedia uploads the bytes inline; they travel as base64 text.
func (c *HTTPClient) CreateMedia(ctx context.Context, media models.MediaCreate) (models.Media, error) {
	body, err := jsonPayload(media)
	if err != nil {
		return models.Media{}, err
	}
	return send[models.Media](ctx, c, opCreateMedia, body)
}

func (c *HTTPClient) GetMedia(ctx context.Context) ([]models.Media, error) {
	return send[[]models.Media](ctx, c, opGetMedia, nil)
}

func (c *HTTPClient) GetMediaByID(ctx context.Context, id models.MediaID) (models.Media, error) {
	return send[models.Media](ctx, c, opGetMediaByID, nil, id)
}

func (c *HTTPClient) DeleteMedia(ctx context.Context, id models.MediaID) error {
	return sendNoContent(ctx, c, opDeleteMedia, id)
}
