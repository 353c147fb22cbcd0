package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tripjournal/internal/timex"
)

// jsonConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero values so a file only overrides what it mentions.
type jsonConfig struct {
	BaseURL           *string         `json:"base_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	DBPath            *string         `json:"db_path"`
	Passphrase        *string         `json:"passphrase"`
	CredentialBackend *string         `json:"credential_backend"`
	SessionBackend    *string         `json:"session_backend"`
	UniformSuccess    *bool           `json:"uniform_success"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	LogBackend        *string         `json:"log_backend"`
	LogBodies         *bool           `json:"log_bodies"`
}

// parseJSON overlays cfg with the file at path. An empty path is a no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.Passphrase, jc.Passphrase)
	setString(&cfg.CredentialBackend, jc.CredentialBackend)
	setString(&cfg.SessionBackend, jc.SessionBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UniformSuccess != nil {
		cfg.UniformSuccess = *jc.UniformSuccess
	}
	if jc.LogBodies != nil {
		cfg.LogBodies = *jc.LogBodies
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
