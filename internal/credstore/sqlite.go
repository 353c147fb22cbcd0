package credstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/cryptox"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
	"github.com/dmitrijs2005/tripjournal/internal/repositories/metadata"
	"github.com/dmitrijs2005/tripjournal/internal/storage"
)

// SQLiteStore keeps the token sealed with AES-GCM in the metadata table.
// The key is derived from a passphrase and a salt generated once per database.
type SQLiteStore struct {
	db   *sql.DB
	repo metadata.Repository
	key  []byte
	log  logging.Logger
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(ctx context.Context, db *sql.DB, passphrase string, log logging.Logger) (*SQLiteStore, error) {
	if passphrase == "" {
		return nil, ErrNoPassphrase
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	repo := metadata.NewSQLiteRepository(db)

	salt, err := repo.Get(ctx, common.StoreSaltKey)
	if err != nil {
		return nil, fmt.Errorf("load store salt: %w", err)
	}
	if salt == nil {
		salt = cryptox.NewSalt()
		if err := repo.Set(ctx, common.StoreSaltKey, salt); err != nil {
			return nil, fmt.Errorf("save store salt: %w", err)
		}
	}

	pw := []byte(passphrase)
	key := cryptox.DeriveKey(pw, salt)
	common.WipeByteArray(pw)

	return &SQLiteStore{db: db, repo: repo, key: key, log: log}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token models.AuthToken) error {
	plain, err := encodeToken(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	sealed, err := cryptox.Seal(s.key, plain)
	common.WipeByteArray(plain)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	return storage.WithTx(ctx, s.db, func(ctx context.Context, tx storage.DBTX) error {
		r := metadata.NewSQLiteRepository(tx)
		if err := r.Delete(ctx, common.AuthTokenKey); err != nil {
			return err
		}
		return r.Insert(ctx, common.AuthTokenKey, sealed)
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.AuthToken, error) {
	sealed, err := s.repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}

	plain, err := cryptox.Open(s.key, sealed)
	if err != nil {
		s.log.Warn(ctx, "stored token cannot be opened, treating as logged out", "error", err)
		return nil, nil
	}
	defer common.WipeByteArray(plain)

	token, err := decodeToken(plain)
	if err != nil {
		s.log.Warn(ctx, "stored token is corrupt, treating as logged out", "error", err)
		return nil, nil
	}
	return token, nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx, common.AuthTokenKey)
}
