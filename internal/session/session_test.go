package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/credstore"
	"github.com/dmitrijs2005/tripjournal/internal/models"
	"github.com/dmitrijs2005/tripjournal/internal/prefs"
	"github.com/dmitrijs2005/tripjournal/internal/repositories/metadata"
	"github.com/dmitrijs2005/tripjournal/internal/storage"
)

var sampleToken = models.AuthToken{AccessToken: "abc123", TokenType: "bearer"}

type failingStore struct {
	loadErr, saveErr, deleteErr error
}

func (f *failingStore) Save(context.Context, models.AuthToken) error    { return f.saveErr }
func (f *failingStore) Load(context.Context) (*models.AuthToken, error) { return nil, f.loadErr }
func (f *failingStore) Delete(context.Context) error                    { return f.deleteErr }

type recorder struct {
	mu  sync.Mutex
	got []bool
}

func (r *recorder) fn(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
}

func (r *recorder) values() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.got...)
}

func TestSession_StartsFromStore(t *testing.T) {
	ctx := context.Background()

	empty := New(ctx, credstore.NewMemoryStore(), nil)
	assert.False(t, empty.IsAuthenticated())

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, sampleToken))
	s := New(ctx, store, nil)

	tok, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, sampleToken, tok)
}

func TestSession_LoadErrorStartsLoggedOut(t *testing.T) {
	s := New(context.Background(), &failingStore{loadErr: errors.New("disk gone")}, nil)
	assert.False(t, s.IsAuthenticated())
}

func TestSession_SetAndClearMirrorStore(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	s := New(ctx, store, nil)

	require.NoError(t, s.Set(ctx, sampleToken))
	assert.True(t, s.IsAuthenticated())
	stored, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sampleToken, *stored)

	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated())
	stored, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSession_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, credstore.NewMemoryStore(), nil)

	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.fn)
	assert.Equal(t, []bool{false}, rec.values(), "current value delivered immediately")

	require.NoError(t, s.Set(ctx, sampleToken))
	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, []bool{false, true, false}, rec.values())

	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Set(ctx, sampleToken))
	assert.Equal(t, []bool{false, true, false}, rec.values())
}

func TestSession_CallbackMayReadSession(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, credstore.NewMemoryStore(), nil)

	var seen []bool
	s.Subscribe(func(bool) { seen = append(seen, s.IsAuthenticated()) })
	require.NoError(t, s.Set(ctx, sampleToken))

	assert.Equal(t, []bool{false, true}, seen)
}

func TestSession_StoreErrorsAreReturned(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	s := New(ctx, &failingStore{saveErr: boom, deleteErr: boom}, nil)

	rec := &recorder{}
	s.Subscribe(rec.fn)

	require.ErrorIs(t, s.Set(ctx, sampleToken), boom)
	assert.True(t, s.IsAuthenticated())

	require.ErrorIs(t, s.Clear(ctx), boom)
	assert.False(t, s.IsAuthenticated())

	assert.Equal(t, []bool{false, true, false}, rec.values())
}

func TestSession_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, credstore.NewMemoryStore(), nil)
	s.Subscribe(func(bool) {})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Set(ctx, sampleToken)
			} else {
				_ = s.Clear(ctx)
			}
			_ = s.IsAuthenticated()
		}(i)
	}
	wg.Wait()
}

func newPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return prefs.New(metadata.NewSQLiteRepository(db))
}

func TestPreferenceHolder_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	p := newPrefs(t)

	h := NewPreferenceHolder(ctx, p, nil)
	assert.False(t, h.IsAuthenticated())

	require.NoError(t, h.Set(ctx, models.AuthToken{AccessToken: "abc123", TokenType: "whatever"}))

	again := NewPreferenceHolder(ctx, p, nil)
	tok, ok := again.Token()
	assert.True(t, ok)
	assert.Equal(t, sampleToken, tok)

	require.NoError(t, again.Clear(ctx))
	assert.False(t, NewPreferenceHolder(ctx, p, nil).IsAuthenticated())
}

func TestPreferenceHolder_Subscribe(t *testing.T) {
	ctx := context.Background()
	h := NewPreferenceHolder(ctx, newPrefs(t), nil)

	rec := &recorder{}
	unsubscribe := h.Subscribe(rec.fn)
	require.NoError(t, h.Set(ctx, sampleToken))
	require.NoError(t, h.Clear(ctx))
	unsubscribe()
	require.NoError(t, h.Set(ctx, sampleToken))

	assert.Equal(t, []bool{false, true, false}, rec.values())
}

func TestSet_RefusesEmptyToken(t *testing.T) {
	ctx := context.Background()
	empty := models.AuthToken{TokenType: "bearer"}

	t.Run("session", func(t *testing.T) {
		store := credstore.NewMemoryStore()
		s := New(ctx, store, nil)
		rec := &recorder{}
		s.Subscribe(rec.fn)

		require.ErrorIs(t, s.Set(ctx, empty), ErrEmptyToken)
		assert.False(t, s.IsAuthenticated())
		assert.Equal(t, []bool{false}, rec.values(), "no notification")

		stored, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("session keeps previous token", func(t *testing.T) {
		s := New(ctx, credstore.NewMemoryStore(), nil)
		require.NoError(t, s.Set(ctx, sampleToken))

		require.ErrorIs(t, s.Set(ctx, models.AuthToken{}), ErrEmptyToken)
		tok, ok := s.Token()
		assert.True(t, ok)
		assert.Equal(t, sampleToken, tok)
	})

	t.Run("preference holder", func(t *testing.T) {
		p := newPrefs(t)
		h := NewPreferenceHolder(ctx, p, nil)
		rec := &recorder{}
		h.Subscribe(rec.fn)

		require.ErrorIs(t, h.Set(ctx, empty), ErrEmptyToken)
		assert.False(t, h.IsAuthenticated())
		assert.Equal(t, []bool{false}, rec.values())

		_, ok, err := p.Get(ctx, common.PrefTokenKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
