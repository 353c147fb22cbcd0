package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

func (a *App) Events(ctx context.Context) error {
	events, err := a.client.GetEvents(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printEvents(a.out, events)
	return nil
}

func (a *App) Event(ctx context.Context, args []string) error {
	id, err := parseID[models.EventID](args, "event <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	ev, err := a.client.GetEvent(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printEvent(a.out, ev)
	return nil
}

// readLocation returns nil when the user leaves the latitude empty.
func (a *App) readLocation(cur *models.Location) (*models.Location, error) {
	var defLat, defLon string
	var defAddr *string
	if cur != nil {
		defLat = strconv.FormatFloat(cur.Latitude, 'f', -1, 64)
		defLon = strconv.FormatFloat(cur.Longitude, 'f', -1, 64)
		defAddr = cur.Address
	}

	latText, err := GetDefaultText(a.reader, "Latitude (empty for no location, '-' to clear)", defLat, a.out)
	if err != nil {
		return nil, err
	}
	if latText == "" || latText == "-" {
		return nil, nil
	}
	lat, err := parseFloat(latText)
	if err != nil {
		return nil, err
	}
	lonText, err := GetDefaultText(a.reader, "Longitude", defLon, a.out)
	if err != nil {
		return nil, err
	}
	lon, err := parseFloat(lonText)
	if err != nil {
		return nil, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("coordinates out of range: %v, %v", lat, lon)
	}
	addr, err := GetOptionalText(a.reader, "Address (optional)", defAddr, a.out)
	if err != nil {
		return nil, err
	}
	return &models.Location{Latitude: lat, Longitude: lon, Address: addr}, nil
}

// readEvent prompts for the mutable event fields, offering cur's values as defaults.
func (a *App) readEvent(cur models.EventUpdate) (models.EventUpdate, error) {
	var (
		e   models.EventUpdate
		err error
	)
	if e.Name, err = GetDefaultText(a.reader, "Event name", cur.Name, a.out); err != nil {
		return e, err
	}
	if e.Name == "" {
		return e, errors.New("event name must not be empty")
	}
	def := cur.Date
	if def.IsZero() {
		def = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if e.Date, err = GetDate(a.reader, "Date", def, a.out); err != nil {
		return e, err
	}
	if e.Note, err = GetOptionalText(a.reader, "Note (optional)", cur.Note, a.out); err != nil {
		return e, err
	}
	if e.Location, err = a.readLocation(cur.Location); err != nil {
		return e, err
	}
	if e.TransitionFromPrevious, err = GetOptionalText(a.reader, "Arrived by, e.g. train (optional)", cur.TransitionFromPrevious, a.out); err != nil {
		return e, err
	}
	return e, nil
}

func (a *App) AddEvent(ctx context.Context) error {
	tripText, err := GetSimpleText(a.reader, "Trip ID", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	tripID, err := parseID[models.TripID]([]string{tripText}, "trip id")
	if err != nil {
		return a.report(ctx, err)
	}
	in, err := a.readEvent(models.EventUpdate{})
	if err != nil {
		return a.report(ctx, err)
	}

	ev, err := a.client.CreateEvent(ctx, models.EventCreate{
		TripID:                 tripID,
		Name:                   in.Name,
		Note:                   in.Note,
		Date:                   in.Date,
		Location:               in.Location,
		TransitionFromPrevious: in.TransitionFromPrevious,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	a.printf("Event %d created\n", ev.ID)
	return nil
}

func (a *App) EditEvent(ctx context.Context, args []string) error {
	id, err := parseID[models.EventID](args, "editevent <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	cur, err := a.client.GetEvent(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	in, err := a.readEvent(models.EventUpdate{
		Name:                   cur.Name,
		Note:                   cur.Note,
		Date:                   cur.Date,
		Location:               cur.Location,
		TransitionFromPrevious: cur.TransitionFromPrevious,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	if _, err := a.client.UpdateEvent(ctx, id, in); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Event %d updated\n", id)
	return nil
}

func (a *App) DeleteEvent(ctx context.Context, args []string) error {
	id, err := parseID[models.EventID](args, "delevent <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.client.DeleteEvent(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Event %d deleted\n", id)
	return nil
}
