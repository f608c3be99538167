// Package log builds the slog.Logger used by the xkeymap command.
//
// Console records always go to stderr; stdout carries command results
// only. With a log file, the file receives a copy of every record at the
// configured level.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is a level below Debug used for per-lookup output.
const LevelTrace slog.Level = -8

// Levels accepted by ParseLevel, in the order shown in help texts. It is
// the enum of the --log.level flag.
const Levels = "trace,debug,info,warn,error"

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Options configures New.
type Options struct {
	Level  string
	File   string
	Stderr io.Writer
}

// fanout passes each record to every handler that accepts it.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// New builds a logger from opts. The returned closers must be closed by
// the caller once logging is done.
func New(opts Options) (*slog.Logger, []io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	handlers := fanout{slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})}
	var closers []io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(handlers), closers, nil
}
