// Package logging builds the process logger: JSON records on a writer,
// passed through a middleware pipe that expands error attributes.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Level     string
	AddSource bool
	// Extra handlers receive every record after the pipe, e.g. an OpenTelemetry bridge.
	Extra []slog.Handler
}

// New returns a logger and does not touch slog.Default.
func New(w io.Writer, opts Options) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: opts.AddSource,
		Level:     ParseLevel(opts.Level),
	})

	pipeline := slogmulti.Pipe(slogmulti.NewHandleInlineMiddleware(errorFormattingMiddleware))

	if len(opts.Extra) == 0 {
		return slog.New(pipeline.Handler(jsonHandler))
	}

	handlers := append([]slog.Handler{jsonHandler}, opts.Extra...)
	return slog.New(pipeline.Handler(slogmulti.Fanout(handlers...)))
}

// ParseLevel maps debug, info, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// errorFormattingMiddleware rewrites error values into {msg, type} groups.
func errorFormattingMiddleware(
	ctx context.Context,
	record slog.Record,
	next func(context.Context, slog.Record) error,
) error {
	formatted := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)

	record.Attrs(func(attr slog.Attr) bool {
		formatted.AddAttrs(formatError(attr))
		return true
	})

	return next(ctx, formatted)
}

func formatError(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}

	err, ok := attr.Value.Any().(error)
	if !ok || err == nil {
		return attr
	}

	return slog.Group(attr.Key,
		slog.String("msg", err.Error()),
		slog.String("type", fmt.Sprintf("%T", err)),
	)
}
