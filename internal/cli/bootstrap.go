package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/tripjournal/internal/client"
	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/config"
	"github.com/dmitrijs2005/tripjournal/internal/credstore"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/prefs"
	"github.com/dmitrijs2005/tripjournal/internal/repositories/metadata"
	"github.com/dmitrijs2005/tripjournal/internal/session"
	"github.com/dmitrijs2005/tripjournal/internal/storage"
)

// Bootstrap builds the logger, local storage, token session and API client
// described by cfg and returns an App ready to Run. The returned func
// releases resources and must be called once the App is done.
// When the sqlite credential store is selected without a passphrase, one is
// read from the terminal.
func Bootstrap(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, func(), error) {
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return nil, nil, err
	}

	passphrase := cfg.Passphrase
	if cfg.NeedsPassphrase() && passphrase == "" {
		pw, err := GetSecret(out, "Enter credential store passphrase: ")
		if err != nil {
			return nil, nil, fmt.Errorf("read passphrase: %w", err)
		}
		passphrase = string(pw)
		common.WipeByteArray(pw)
	}

	var db *sql.DB
	if cfg.NeedsDB() {
		db, err = storage.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
	}
	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
		if z, ok := logger.(*logging.ZapLogger); ok {
			_ = z.Sync()
		}
	}

	sess, err := newSession(ctx, cfg, db, passphrase, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithRequestHook(client.NewLoggingHook(logger, cfg.LogBodies)),
	}
	if cfg.UniformSuccess {
		opts = append(opts, client.WithUniformSuccess())
	}
	c, err := client.New(client.Config{BaseURL: cfg.BaseURL, Timeout: cfg.RequestTimeout}, sess, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Debug(ctx, "client ready",
		"base_url", cfg.BaseURL,
		"credential_backend", cfg.CredentialBackend,
		"session_backend", cfg.SessionBackend,
	)
	return NewApp(c, in, out, logger), cleanup, nil
}

func newSession(ctx context.Context, cfg *config.Config, db *sql.DB, passphrase string, log logging.Logger) (client.TokenSession, error) {
	switch cfg.SessionBackend {
	case config.SessionPreferences:
		return session.NewPreferenceHolder(ctx, prefs.New(metadata.NewSQLiteRepository(db)), log), nil
	case config.SessionSecure:
		store, err := credstore.New(ctx, cfg.CredentialBackend, db, passphrase, log)
		if err != nil {
			return nil, err
		}
		return session.New(ctx, store, log), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
