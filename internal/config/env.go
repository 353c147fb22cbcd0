package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "TRIPJOURNAL_"

const defaultEnvFile = ".env"

// parseEnv overlays cfg with TRIPJOURNAL_* variables. Values come from
// envFile (or ./.env when envFile is empty and the file exists); real
// environment variables win over the file. The process environment is
// not modified.
func parseEnv(cfg *Config, envFile string) error {
	fileVars, err := readEnvFile(envFile)
	if err != nil {
		return err
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			return v, true
		}
		v, ok := fileVars[envPrefix+name]
		return v, ok
	}

	strVars := map[string]*string{
		"BASE_URL":           &cfg.BaseURL,
		"DB_PATH":            &cfg.DBPath,
		"PASSPHRASE":         &cfg.Passphrase,
		"CREDENTIAL_BACKEND": &cfg.CredentialBackend,
		"SESSION_BACKEND":    &cfg.SessionBackend,
		"LOG_LEVEL":          &cfg.LogLevel,
		"LOG_FORMAT":         &cfg.LogFormat,
		"LOG_BACKEND":        &cfg.LogBackend,
	}
	for name, dst := range strVars {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	boolVars := map[string]*bool{
		"UNIFORM_SUCCESS": &cfg.UniformSuccess,
		"LOG_BODIES":      &cfg.LogBodies,
	}
	for name, dst := range boolVars {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = b
		}
	}

	if v, ok := lookup("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}
