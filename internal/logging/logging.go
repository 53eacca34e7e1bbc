// Package logging builds the diagnostic logger and carries it through
// context.Context. User-facing output goes through the printer package.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger that writes to w. Debug output is enabled only when
// debug is true; otherwise warnings and errors are reported.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: debug,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "poet",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger attached to ctx, or log.Default() when there is none.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
