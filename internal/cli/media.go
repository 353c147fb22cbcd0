package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tripjournal/internal/filex"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// maxUploadSize caps inline uploads; media travels base64-encoded in one JSON body.
const maxUploadSize = 10 << 20

// Media lists all media, or shows one item when an id is given.
func (a *App) Media(ctx context.Context, args []string) error {
	if len(args) > 0 {
		id, err := parseID[models.MediaID](args, "media [id]")
		if err != nil {
			return a.report(ctx, err)
		}
		m, err := a.client.GetMediaByID(ctx, id)
		if err != nil {
			return a.report(ctx, err)
		}
		printMediaItem(a.out, m)
		return nil
	}

	media, err := a.client.GetMedia(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printMedia(a.out, media)
	return nil
}

func (a *App) AddMedia(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.report(ctx, fmt.Errorf("usage: addmedia <eventID> <file>"))
	}
	eventID, err := parseID[models.EventID](args, "addmedia <eventID> <file>")
	if err != nil {
		return a.report(ctx, err)
	}

	data, err := filex.ReadFileLimit(args[1], maxUploadSize)
	if err != nil {
		return a.report(ctx, err)
	}

	m, err := a.client.CreateMedia(ctx, models.MediaCreate{EventID: eventID, Base64Data: data})
	if err != nil {
		return a.report(ctx, err)
	}
	a.printf("Media %d attached to event %d (%d bytes)\n", m.ID, eventID, len(data))
	return nil
}

func (a *App) DeleteMedia(ctx context.Context, args []string) error {
	id, err := parseID[models.MediaID](args, "delmedia <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.client.DeleteMedia(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Media %d deleted\n", id)
	return nil
}
