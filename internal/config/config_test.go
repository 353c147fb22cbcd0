package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

// isolate runs the test in an empty directory so a stray ./.env is not picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:8000", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "sqlite", c.CredentialBackend)
	assert.Equal(t, "secure", c.SessionBackend)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.UniformSuccess)
	assert.NotEmpty(t, c.DBPath)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(defaults(), *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)

	writeFile(t, dir, ".env", "TRIPJOURNAL_BASE_URL=http://dotenv:1\n"+
		"TRIPJOURNAL_DB_PATH=/tmp/dotenv.db\n"+
		"TRIPJOURNAL_LOG_LEVEL=warn\n"+
		"TRIPJOURNAL_PASSPHRASE=from-dotenv\n")
	t.Setenv("TRIPJOURNAL_DB_PATH", "/tmp/env.db")
	t.Setenv("TRIPJOURNAL_REQUEST_TIMEOUT", "7s")

	jsonPath := writeFile(t, dir, "cfg.json", `{
		"base_url": "http://json:2",
		"request_timeout": "12s",
		"log_backend": "zap"
	}`)

	cfg, err := Load([]string{"-c", jsonPath, "-t=3s", "-uniform=true", "-unrelated", "x"})
	require.NoError(t, err)

	want := defaults()
	want.BaseURL = "http://json:2"        // json beats .env
	want.DBPath = "/tmp/env.db"           // env beats .env
	want.LogLevel = "warn"                // .env beats defaults
	want.Passphrase = "from-dotenv"       // only in .env
	want.LogBackend = "zap"               // only in json
	want.RequestTimeout = 3 * time.Second // flag beats env and json
	want.UniformSuccess = true

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitEnvFile(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "custom.env", "TRIPJOURNAL_SESSION_BACKEND=preferences\nTRIPJOURNAL_LOG_BODIES=true\n")

	cfg, err := Load([]string{"-env", p})
	require.NoError(t, err)
	assert.Equal(t, SessionPreferences, cfg.SessionBackend)
	assert.True(t, cfg.LogBodies)
	assert.True(t, cfg.NeedsDB())
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing explicit env file", func(t *testing.T) {
		_, err := Load([]string{"-env", filepath.Join(dir, "nope.env")})
		require.Error(t, err)
	})

	t.Run("missing json file", func(t *testing.T) {
		_, err := Load([]string{"-config", filepath.Join(dir, "nope.json")})
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		p := writeFile(t, dir, "bad.json", `{"base_url": `)
		_, err := Load([]string{"-c", p})
		require.Error(t, err)
	})

	t.Run("bad bool in env", func(t *testing.T) {
		t.Setenv("TRIPJOURNAL_UNIFORM_SUCCESS", "sometimes")
		_, err := Load(nil)
		require.Error(t, err)
	})

	t.Run("bad duration flag", func(t *testing.T) {
		_, err := Load([]string{"-t", "soon"})
		require.Error(t, err)
	})

	t.Run("unknown credential backend", func(t *testing.T) {
		_, err := Load([]string{"-credstore", "floppy"})
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"session backend", func(c *Config) { c.SessionBackend = "cookie" }},
		{"log backend", func(c *Config) { c.LogBackend = "logrus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestNeedsDB(t *testing.T) {
	c := defaults()
	assert.True(t, c.NeedsDB())

	c.CredentialBackend = "keyring"
	assert.False(t, c.NeedsDB())

	c.SessionBackend = SessionPreferences
	assert.True(t, c.NeedsDB())
}

func TestNeedsPassphrase(t *testing.T) {
	c := defaults()
	assert.True(t, c.NeedsPassphrase(), "default sqlite store is sealed with a passphrase")

	c.Passphrase = "from-env"
	assert.True(t, c.NeedsPassphrase())

	c.CredentialBackend = "keyring"
	assert.False(t, c.NeedsPassphrase())

	c.CredentialBackend = "sqlite"
	c.SessionBackend = SessionPreferences
	assert.False(t, c.NeedsPassphrase())
}
