package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

// PrefStore is the slice of prefs.Store the holder needs.
type PrefStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// PreferenceHolder keeps only the access-token string, in plain text, in the
// preference store. The token type is always reported as bearer.
type PreferenceHolder struct {
	prefs PrefStore
	log   logging.Logger

	mu     sync.RWMutex
	access string

	sig signal
}

func NewPreferenceHolder(ctx context.Context, prefs PrefStore, log logging.Logger) *PreferenceHolder {
	if log == nil {
		log = logging.NopLogger{}
	}
	h := &PreferenceHolder{prefs: prefs, log: log}

	v, ok, err := prefs.Get(ctx, common.PrefTokenKey)
	switch {
	case err != nil:
		log.Warn(ctx, "failed to load token preference, starting logged out", "error", err)
	case ok:
		h.access = v
	}
	return h
}

func (h *PreferenceHolder) Token() (models.AuthToken, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.access == "" {
		return models.AuthToken{}, false
	}
	return models.AuthToken{AccessToken: h.access, TokenType: "bearer"}, true
}

func (h *PreferenceHolder) IsAuthenticated() bool {
	_, ok := h.Token()
	return ok
}

func (h *PreferenceHolder) Set(ctx context.Context, token models.AuthToken) error {
	if token.IsZero() {
		return ErrEmptyToken
	}
	h.mu.Lock()
	h.access = token.AccessToken
	h.mu.Unlock()

	err := h.prefs.Set(ctx, common.PrefTokenKey, token.AccessToken)
	h.sig.publish(true)
	if err != nil {
		return fmt.Errorf("persist token preference: %w", err)
	}
	return nil
}

func (h *PreferenceHolder) Clear(ctx context.Context) error {
	h.mu.Lock()
	h.access = ""
	h.mu.Unlock()

	err := h.prefs.Remove(ctx, common.PrefTokenKey)
	h.sig.publish(false)
	if err != nil {
		return fmt.Errorf("remove token preference: %w", err)
	}
	return nil
}

func (h *PreferenceHolder) Subscribe(fn func(authenticated bool)) func() {
	return h.sig.subscribe(fn, h.IsAuthenticated())
}
