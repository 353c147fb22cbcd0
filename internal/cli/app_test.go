package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tripjournal/internal/client"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// fakeClient is an in-memory client.Client.
type fakeClient struct {
	token *models.AuthToken
	subs  []func(bool)

	trips  map[models.TripID]models.Trip
	events map[models.EventID]models.Event
	media  []models.Media

	err error // returned by every remote call when set

	loginUser, loginPass string
	createdTrip          models.TripCreate
	updatedTrip          models.TripUpdate
	createdEvent         models.EventCreate
	updatedEvent         models.EventUpdate
	createdMedia         models.MediaCreate
	deleted              []string
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		trips:  map[models.TripID]models.Trip{},
		events: map[models.EventID]models.Event{},
	}
}

func (f *fakeClient) publish(v bool) {
	for _, fn := range f.subs {
		fn(v)
	}
}

func (f *fakeClient) Register(_ context.Context, u, p string) (models.AuthToken, error) {
	return f.Login(context.Background(), u, p)
}

func (f *fakeClient) Login(_ context.Context, u, p string) (models.AuthToken, error) {
	if f.err != nil {
		return models.AuthToken{}, f.err
	}
	f.loginUser, f.loginPass = u, p
	f.token = &models.AuthToken{AccessToken: "abc123", TokenType: "bearer"}
	f.publish(true)
	return *f.token, nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.token = nil
	f.publish(false)
	return nil
}

func (f *fakeClient) CreateTrip(_ context.Context, t models.TripCreate) (models.Trip, error) {
	if f.err != nil {
		return models.Trip{}, f.err
	}
	f.createdTrip = t
	return models.Trip{ID: 11, Name: t.Name, StartDate: t.StartDate, EndDate: t.EndDate}, nil
}

func (f *fakeClient) GetTrips(context.Context) ([]models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Trip
	for _, t := range f.trips {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeClient) GetTrip(_ context.Context, id models.TripID) (models.Trip, error) {
	if f.err != nil {
		return models.Trip{}, f.err
	}
	t, ok := f.trips[id]
	if !ok {
		return models.Trip{}, &client.HTTPError{StatusCode: 404, Body: []byte(`{"detail":"Trip not found"}`)}
	}
	return t, nil
}

func (f *fakeClient) UpdateTrip(_ context.Context, id models.TripID, t models.TripUpdate) (models.Trip, error) {
	f.updatedTrip = t
	return models.Trip{ID: id, Name: t.Name}, f.err
}

func (f *fakeClient) DeleteTrip(_ context.Context, id models.TripID) error {
	f.deleted = append(f.deleted, fmt.Sprintf("trip %d", id))
	return f.err
}

func (f *fakeClient) CreateEvent(_ context.Context, e models.EventCreate) (models.Event, error) {
	f.createdEvent = e
	return models.Event{ID: 21, TripID: e.TripID, Name: e.Name}, f.err
}

func (f *fakeClient) GetEvents(context.Context) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, f.err
}

func (f *fakeClient) GetEvent(_ context.Context, id models.EventID) (models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return models.Event{}, &client.HTTPError{StatusCode: 404}
	}
	return e, f.err
}

func (f *fakeClient) UpdateEvent(_ context.Context, id models.EventID, e models.EventUpdate) (models.Event, error) {
	f.updatedEvent = e
	return models.Event{ID: id, Name: e.Name}, f.err
}

func (f *fakeClient) DeleteEvent(_ context.Context, id models.EventID) error {
	f.deleted = append(f.deleted, fmt.Sprintf("event %d", id))
	return f.err
}

func (f *fakeClient) CreateMedia(_ context.Context, m models.MediaCreate) (models.Media, error) {
	f.createdMedia = m
	return models.Media{ID: 31, EventID: m.EventID, Base64Data: m.Base64Data}, f.err
}

func (f *fakeClient) GetMedia(context.Context) ([]models.Media, error) { return f.media, f.err }

func (f *fakeClient) GetMediaByID(_ context.Context, id models.MediaID) (models.Media, error) {
	for _, m := range f.media {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Media{}, &client.HTTPError{StatusCode: 404}
}

func (f *fakeClient) DeleteMedia(_ context.Context, id models.MediaID) error {
	f.deleted = append(f.deleted, fmt.Sprintf("media %d", id))
	return f.err
}

func (f *fakeClient) Token() (models.AuthToken, bool) {
	if f.token == nil {
		return models.AuthToken{}, false
	}
	return *f.token, true
}

func (f *fakeClient) IsAuthenticated() bool { return f.token != nil }

func (f *fakeClient) Subscribe(fn func(bool)) func() {
	f.subs = append(f.subs, fn)
	fn(f.IsAuthenticated())
	return func() {}
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(fc, strings.NewReader(input), &out, nil), &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
}

func TestApp_StatusFollowsSubscription(t *testing.T) {
	fc := newFakeClient()
	app, _ := newTestApp(fc, "")

	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "(offline)", app.getStatus())

	fc.publish(true)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(online)", app.getStatus())
}

func TestApp_Login(t *testing.T) {
	stubPassword(t, "secret")
	fc := newFakeClient()
	app, out := newTestApp(fc, "alice\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "alice", fc.loginUser)
	assert.Equal(t, "secret", fc.loginPass)
	assert.Equal(t, "(alice online)", app.getStatus())
	assert.Contains(t, out.String(), "Login successful")

	require.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, "(offline)", app.getStatus())
}

func TestApp_LoginRejected(t *testing.T) {
	stubPassword(t, "wrong")
	fc := newFakeClient()
	fc.err = fmt.Errorf("login: %w", &client.HTTPError{StatusCode: 401, Body: []byte(`{"detail":"Incorrect username or password"}`)})
	app, out := newTestApp(fc, "alice\n")

	require.Error(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Not authorized")
	assert.Equal(t, "(offline)", app.getStatus())
}

func TestApp_LoginEmptyUser(t *testing.T) {
	fc := newFakeClient()
	app, _ := newTestApp(fc, "\n")

	require.ErrorIs(t, app.Login(context.Background()), errEmptyUserName)
	assert.Empty(t, fc.loginUser)
}

func TestApp_Status(t *testing.T) {
	fc := newFakeClient()
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Status(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")

	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	fc.token = &models.AuthToken{AccessToken: signed, TokenType: "bearer"}

	out.Reset()
	require.NoError(t, app.Status(context.Background()))
	assert.Contains(t, out.String(), "Logged in")
	assert.Contains(t, out.String(), "user: alice")
	assert.Contains(t, out.String(), "expires: 2030-01-01T00:00:00Z")
}

func TestApp_AddTrip(t *testing.T) {
	fc := newFakeClient()
	app, out := newTestApp(fc, "Paris\n2024-01-01\n2024-01-05\n")

	require.NoError(t, app.AddTrip(context.Background()))
	assert.Equal(t, models.TripCreate{
		Name:      "Paris",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}, fc.createdTrip)
	assert.Contains(t, out.String(), "Trip 11 created")
}

func TestApp_AddTrip_EndBeforeStart(t *testing.T) {
	fc := newFakeClient()
	app, _ := newTestApp(fc, "Paris\n2024-01-05\n2024-01-01\n")

	require.ErrorIs(t, app.AddTrip(context.Background()), errEndBeforeStart)
	assert.Empty(t, fc.createdTrip.Name)
}

func TestApp_EditTrip_KeepsDefaults(t *testing.T) {
	fc := newFakeClient()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	fc.trips[3] = models.Trip{ID: 3, Name: "Paris", StartDate: start, EndDate: end}
	app, _ := newTestApp(fc, "Paris & Lyon\n\n\n")

	require.NoError(t, app.EditTrip(context.Background(), []string{"3"}))
	assert.Equal(t, models.TripUpdate{Name: "Paris & Lyon", StartDate: start, EndDate: end}, fc.updatedTrip)
}

func TestApp_TripNotFound(t *testing.T) {
	fc := newFakeClient()
	app, out := newTestApp(fc, "")

	require.Error(t, app.Trip(context.Background(), []string{"99"}))
	assert.Contains(t, out.String(), "Not found.")
}

func TestApp_TripsListing(t *testing.T) {
	fc := newFakeClient()
	fc.trips[1] = models.Trip{ID: 1, Name: "Paris", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Trips(context.Background()))
	assert.Contains(t, out.String(), "Paris")
	assert.Contains(t, out.String(), "2024-01-05")
}

func TestApp_ServerErrorsAreReported(t *testing.T) {
	fc := newFakeClient()
	fc.err = fmt.Errorf("GET /trips: %w", &client.HTTPError{StatusCode: 500, Body: []byte(`{"detail":"db down"}`)})
	app, out := newTestApp(fc, "")

	require.Error(t, app.Trips(context.Background()))
	assert.Contains(t, out.String(), "Server error 500: db down")

	out.Reset()
	fc.err = fmt.Errorf("GET /trips: %w: %w", client.ErrInvalidResponse, errors.New("connection refused"))
	require.Error(t, app.Trips(context.Background()))
	assert.Contains(t, out.String(), "Server unavailable")
}

func TestApp_AddEvent(t *testing.T) {
	fc := newFakeClient()
	input := strings.Join([]string{
		"1",          // trip id
		"Louvre",     // name
		"2024-01-02", // date
		"Mona Lisa",  // note
		"48.8606",    // latitude
		"2.3376",     // longitude
		"",           // address
		"metro",      // transition
	}, "\n") + "\n"
	app, _ := newTestApp(fc, input)

	require.NoError(t, app.AddEvent(context.Background()))

	got := fc.createdEvent
	assert.Equal(t, models.TripID(1), got.TripID)
	assert.Equal(t, "Louvre", got.Name)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, models.Optional("Mona Lisa"), got.Note)
	assert.Equal(t, &models.Location{Latitude: 48.8606, Longitude: 2.3376}, got.Location)
	assert.Equal(t, models.Optional("metro"), got.TransitionFromPrevious)
}

func TestApp_EditEvent_ClearsLocation(t *testing.T) {
	fc := newFakeClient()
	fc.events[5] = models.Event{
		ID: 5, TripID: 1, Name: "Louvre",
		Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Location: &models.Location{Latitude: 48.8606, Longitude: 2.3376},
	}
	// keep name, date and note; clear location; keep transition
	app, _ := newTestApp(fc, "\n\n\n-\n\n")

	require.NoError(t, app.EditEvent(context.Background(), []string{"5"}))
	assert.Equal(t, "Louvre", fc.updatedEvent.Name)
	assert.Nil(t, fc.updatedEvent.Location)
	assert.Nil(t, fc.updatedEvent.Note)
}

func TestApp_AddMedia(t *testing.T) {
	fc := newFakeClient()
	app, out := newTestApp(fc, "")

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xD8, 0xFF}, 0o600))

	require.NoError(t, app.AddMedia(context.Background(), []string{"4", path}))
	assert.Equal(t, models.MediaCreate{EventID: 4, Base64Data: []byte{0xFF, 0xD8, 0xFF}}, fc.createdMedia)
	assert.Contains(t, out.String(), "Media 31 attached to event 4")

	require.Error(t, app.AddMedia(context.Background(), []string{"4"}))
	require.Error(t, app.AddMedia(context.Background(), []string{"4", filepath.Join(t.TempDir(), "missing.jpg")}))
}

func TestApp_Deletes(t *testing.T) {
	fc := newFakeClient()
	app, _ := newTestApp(fc, "")
	ctx := context.Background()

	require.NoError(t, app.DeleteTrip(ctx, []string{"1"}))
	require.NoError(t, app.DeleteEvent(ctx, []string{"2"}))
	require.NoError(t, app.DeleteMedia(ctx, []string{"3"}))
	require.Error(t, app.DeleteMedia(ctx, nil))

	assert.Equal(t, []string{"trip 1", "event 2", "media 3"}, fc.deleted)
}

func TestApp_Run(t *testing.T) {
	stubPassword(t, "secret")
	fc := newFakeClient()
	app, out := newTestApp(fc, "login\nalice\nstatus\nexit\n")

	app.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "tj (offline)> ")
	assert.Contains(t, s, "tj (alice online)> ")
	assert.Contains(t, s, "Bye!")
}

func TestApp_Media(t *testing.T) {
	fc := newFakeClient()
	fc.media = []models.Media{{ID: 9, EventID: 4, Base64Data: []byte("hello")}}
	app, out := newTestApp(fc, "")
	ctx := context.Background()

	require.NoError(t, app.Media(ctx, nil))
	assert.Contains(t, out.String(), "BYTES")

	out.Reset()
	require.NoError(t, app.Media(ctx, []string{"9"}))
	assert.Equal(t, "Media 9 (event 4): 5 bytes\n", out.String())

	out.Reset()
	require.Error(t, app.Media(ctx, []string{"10"}))
	assert.Contains(t, out.String(), "Not found.")

	require.Error(t, app.Media(ctx, []string{"abc"}))
}
