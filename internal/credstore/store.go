// Package credstore persists the single auth token between runs.
//
// Load treats unreadable data as "no token": a corrupt or foreign entry logs
// the user out instead of failing startup. Only I/O failures of the
// underlying store are returned as errors.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

type Store interface {
	// Save replaces any previously stored token.
	Save(ctx context.Context, token models.AuthToken) error
	// Load returns (nil, nil) when nothing usable is stored.
	Load(ctx context.Context) (*models.AuthToken, error)
	// Delete is a no-op when nothing is stored.
	Delete(ctx context.Context) error
}

const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

var (
	ErrUnknownBackend = errors.New("unknown credential backend")
	// ErrNoPassphrase is returned by the sqlite backend for an empty passphrase.
	// The salt lives next to the sealed token, so the passphrase is the only secret.
	ErrNoPassphrase = errors.New("credential store passphrase is empty")
)

// New builds the store named by backend. db and passphrase are only used by
// the sqlite backend.
func New(ctx context.Context, backend string, db *sql.DB, passphrase string, log logging.Logger) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLiteStore(ctx, db, passphrase, log)
	case BackendKeyring:
		return NewKeyringStore(log), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func encodeToken(token models.AuthToken) ([]byte, error) {
	return json.Marshal(token)
}

// decodeToken rejects payloads that parse but carry no access token.
func decodeToken(data []byte) (*models.AuthToken, error) {
	var t models.AuthToken
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, errors.New("stored token has no access_token")
	}
	return &t, nil
}
