// Package config assembles the CLI settings from layered sources:
// defaults, then .env file and environment, then a JSON file, then flags.
// Each later source overrides only the values it actually sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/credstore"
	"github.com/dmitrijs2005/tripjournal/internal/flagx"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
)

const (
	SessionSecure      = "secure"
	SessionPreferences = "preferences"
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DBPath         string
	// Passphrase unlocks the sqlite credential store. Never accepted as a flag.
	Passphrase        string
	CredentialBackend string
	SessionBackend    string
	UniformSuccess    bool
	LogLevel          string
	LogFormat         string
	LogBackend        string
	LogBodies         bool
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = common.DefaultBaseURL
	c.RequestTimeout = 30 * time.Second
	c.DBPath = defaultDBPath()
	c.Passphrase = ""
	c.CredentialBackend = credstore.BackendSQLite
	c.SessionBackend = SessionSecure
	c.UniformSuccess = false
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.LogBackend = logging.BackendSlog
	c.LogBodies = false
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tripjournal.db"
	}
	return filepath.Join(dir, "tripjournal", "tripjournal.db")
}

// Load builds a Config from defaults, the environment, an optional JSON file
// (-c/-config) and flags found in args (usually os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, flagx.EnvFilePath(args)); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base url is empty", ErrInvalid)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalid)
	}
	switch c.CredentialBackend {
	case credstore.BackendSQLite, credstore.BackendKeyring, credstore.BackendMemory:
	default:
		return fmt.Errorf("%w: credential backend %q", ErrInvalid, c.CredentialBackend)
	}
	switch c.SessionBackend {
	case SessionSecure, SessionPreferences:
	default:
		return fmt.Errorf("%w: session backend %q", ErrInvalid, c.SessionBackend)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("%w: log backend %q", ErrInvalid, c.LogBackend)
	}
	return nil
}

// NeedsDB reports whether the configured backends use the local database.
func (c *Config) NeedsDB() bool {
	return c.CredentialBackend == credstore.BackendSQLite || c.SessionBackend == SessionPreferences
}

// NeedsPassphrase reports whether the token is sealed in the sqlite store,
// which cannot be opened without a passphrase.
func (c *Config) NeedsPassphrase() bool {
	return c.SessionBackend == SessionSecure && c.CredentialBackend == credstore.BackendSQLite
}
