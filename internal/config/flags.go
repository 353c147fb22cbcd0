package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/tripjournal/internal/flagx"
)

var knownFlags = []string{
	"-a", "-t", "-db", "-credstore", "-session", "-uniform",
	"-log-level", "-log-format", "-log-backend", "-log-bodies",
}

// parseFlags overlays cfg with the flags it knows; other flags in args are ignored.
//
//	-a string            backend base URL
//	-t duration          per-request timeout, e.g. 10s
//	-db string           local database path
//	-credstore string    sqlite | keyring | memory
//	-session string      secure | preferences
//	-uniform             accept any 2xx from every endpoint
//	-log-level string    debug | info | warn | error
//	-log-format string   text | json
//	-log-backend string  slog | zap
//	-log-bodies          include request/response bodies in debug logs
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("tripjournal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.CredentialBackend, "credstore", cfg.CredentialBackend, "credential backend")
	fs.StringVar(&cfg.SessionBackend, "session", cfg.SessionBackend, "session backend")
	fs.BoolVar(&cfg.UniformSuccess, "uniform", cfg.UniformSuccess, "accept any 2xx status")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend")
	fs.BoolVar(&cfg.LogBodies, "log-bodies", cfg.LogBodies, "log HTTP bodies")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
