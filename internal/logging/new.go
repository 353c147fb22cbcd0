package logging

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w.
//
// backend is "slog" or "zap", level one of debug/info/warn/error, and
// format "text" or "json".
func New(backend, level, format string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		opts := &slog.HandlerOptions{Level: lvl}
		var h slog.Handler
		switch format {
		case "", FormatText:
			h = slog.NewTextHandler(w, opts)
		case FormatJSON:
			h = slog.NewJSONHandler(w, opts)
		default:
			return nil, fmt.Errorf("unknown log format %q", format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		var enc zapcore.Encoder
		switch format {
		case "", FormatText:
			enc = zapcore.NewConsoleEncoder(encCfg)
		case FormatJSON:
			enc = zapcore.NewJSONEncoder(encCfg)
		default:
			return nil, fmt.Errorf("unknown log format %q", format)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
