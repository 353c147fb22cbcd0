package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

var errEndBeforeStart = errors.New("end date is before start date")

func (a *App) Trips(ctx context.Context) error {
	trips, err := a.client.GetTrips(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printTrips(a.out, trips)
	return nil
}

func (a *App) Trip(ctx context.Context, args []string) error {
	id, err := parseID[models.TripID](args, "trip <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	trip, err := a.client.GetTrip(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printTrip(a.out, trip)
	return nil
}

// readTrip prompts for every trip field, offering cur's values as defaults.
func (a *App) readTrip(cur models.TripUpdate) (models.TripUpdate, error) {
	var (
		t   models.TripUpdate
		err error
	)
	if t.Name, err = GetDefaultText(a.reader, "Trip name", cur.Name, a.out); err != nil {
		return t, err
	}
	if t.Name == "" {
		return t, errors.New("trip name must not be empty")
	}
	if t.StartDate, err = GetDate(a.reader, "Start date", cur.StartDate, a.out); err != nil {
		return t, err
	}
	if t.EndDate, err = GetDate(a.reader, "End date", cur.EndDate, a.out); err != nil {
		return t, err
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return t, errors.New("start and end dates are required")
	}
	if t.EndDate.Before(t.StartDate) {
		return t, errEndBeforeStart
	}
	return t, nil
}

func (a *App) AddTrip(ctx context.Context) error {
	in, err := a.readTrip(models.TripUpdate{})
	if err != nil {
		return a.report(ctx, err)
	}
	trip, err := a.client.CreateTrip(ctx, models.TripCreate(in))
	if err != nil {
		return a.report(ctx, err)
	}
	a.printf("Trip %d created\n", trip.ID)
	return nil
}

func (a *App) EditTrip(ctx context.Context, args []string) error {
	id, err := parseID[models.TripID](args, "edittrip <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	cur, err := a.client.GetTrip(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	in, err := a.readTrip(models.TripUpdate{Name: cur.Name, StartDate: cur.StartDate, EndDate: cur.EndDate})
	if err != nil {
		return a.report(ctx, err)
	}
	if _, err := a.client.UpdateTrip(ctx, id, in); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Trip %d updated\n", id)
	return nil
}

func (a *App) DeleteTrip(ctx context.Context, args []string) error {
	id, err := parseID[models.TripID](args, "deltrip <id>")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.client.DeleteTrip(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Trip %d deleted\n", id)
	return nil
}
