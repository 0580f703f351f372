package diag

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

type slogReporter struct {
	l *slog.Logger
}

// NewSlog returns a Reporter that writes each diagnostic as one log record.
// A nil logger falls back to slog.Default().
func NewSlog(l *slog.Logger) Reporter {
	if l == nil {
		l = slog.Default()
	}
	return &slogReporter{l: l}
}

// Stderr returns the default channel: a text logger on standard error.
func Stderr() Reporter {
	return NewSlog(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Discard returns a Reporter that drops everything.
func Discard() Reporter {
	return NewSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (r *slogReporter) Report(d Diagnostic) {
	r.l.LogAttrs(context.Background(), level(d.Severity), d.String(),
		slog.String("op", d.Op),
		slog.Int("size", d.Size),
		slog.Int("code", d.Code),
		slog.String("err", d.Message),
	)
}

func level(s Severity) slog.Level {
	switch s {
	case SevInfo:
		return slog.LevelInfo
	case SevWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
