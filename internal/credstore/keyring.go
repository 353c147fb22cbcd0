package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
)

const KeyringService = "tripjournal"

// KeyringStore uses the OS credential facility (Keychain, Secret Service,
// Windows Credential Manager).
type KeyringStore struct {
	service string
	account string
	log     logging.Logger
}

var _ Store = (*KeyringStore)(nil)

func NewKeyringStore(log logging.Logger) *KeyringStore {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &KeyringStore{service: KeyringService, account: common.AuthTokenKey, log: log}
}

func (s *KeyringStore) Save(_ context.Context, token models.AuthToken) error {
	data, err := encodeToken(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := keyring.Set(s.service, s.account, string(data)); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

func (s *KeyringStore) Load(ctx context.Context) (*models.AuthToken, error) {
	data, err := keyring.Get(s.service, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("keyring get: %w", err)
	}

	token, err := decodeToken([]byte(data))
	if err != nil {
		s.log.Warn(ctx, "keyring entry is corrupt, treating as logged out", "error", err)
		return nil, nil
	}
	return token, nil
}

func (s *KeyringStore) Delete(_ context.Context) error {
	err := keyring.Delete(s.service, s.account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
