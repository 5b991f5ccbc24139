// Package logger builds the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Env    string // development or production
	Level  string // debug, info, warn, error; empty picks by Env
	Format string // text or json
	File   string // optional path, output is tee'd to it
	Output io.Writer
}

// New constructs the logger. The returned close func releases the log
// file, if one was opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = io.MultiWriter(out, f)
		closeFn = f.Close
	}

	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level, opts.Env)}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, hopts)
	case "", "text":
		handler = slog.NewTextHandler(out, hopts)
	default:
		closeFn()
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	return slog.New(handler).With("service", "morning"), closeFn, nil
}

func ParseLevel(level, env string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "production" {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}
