// Package session keeps the current auth token in memory, mirrors it to a
// durable store and tells subscribers whether the user is authenticated.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tripjournal/internal/credstore"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// ErrEmptyToken is returned by Set for a token without an access token.
var ErrEmptyToken = errors.New("empty access token")

// Session mirrors a credstore.Store. Concurrent Set/Clear calls are last
// writer wins; callers that care must serialize auth operations.
type Session struct {
	store credstore.Store
	log   logging.Logger

	mu    sync.RWMutex
	token *models.AuthToken

	sig signal
}

// New loads the persisted token, if any. A failing store starts the
// session logged out.
func New(ctx context.Context, store credstore.Store, log logging.Logger) *Session {
	if log == nil {
		log = logging.NopLogger{}
	}
	s := &Session{store: store, log: log}

	token, err := store.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load stored token, starting logged out", "error", err)
		return s
	}
	s.token = token
	return s
}

func (s *Session) Token() (models.AuthToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return models.AuthToken{}, false
	}
	return *s.token, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Set replaces the in-memory token, persists it and notifies subscribers.
// A zero token is refused with ErrEmptyToken and changes nothing.
// Subscribers are notified even when persisting fails since memory already changed.
func (s *Session) Set(ctx context.Context, token models.AuthToken) error {
	if token.IsZero() {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.token = &token
	s.mu.Unlock()

	err := s.store.Save(ctx, token)
	s.sig.publish(true)
	if err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Clear drops the token from memory and from the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = nil
	s.mu.Unlock()

	err := s.store.Delete(ctx)
	s.sig.publish(false)
	if err != nil {
		return fmt.Errorf("delete stored token: %w", err)
	}
	return nil
}

// Subscribe calls fn with the current state right away and again after
// every Set or Clear. The returned func unsubscribes.
func (s *Session) Subscribe(fn func(authenticated bool)) func() {
	return s.sig.subscribe(fn, s.IsAuthenticated())
}
