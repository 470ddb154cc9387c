package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// InitLogging configures the default slog logger used for lifecycle messages
// (startup, shutdown, config reloads).
//
// The logger writes JSON to stdout and uses the same key names as Record
// where they overlap ("timestamp", "level", "module", "correlationId").
func InitLogging(module string, level Level) {
	slog.SetDefault(newSlogLogger(os.Stdout, module, level))
}

func newSlogLogger(w io.Writer, module string, level Level) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     SlogLevel(level),
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.LevelKey:
				a.Value = slog.StringValue(strings.ToLower(a.Value.String()))
			case slog.MessageKey:
				a.Key = "message"
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok {
					if strings.Contains(src.File, "/internal/") {
						relPath := filepath.Join("internal", strings.SplitAfter(src.File, "/internal/")[1])
						return slog.Attr{
							Key:   "file",
							Value: slog.StringValue(fmt.Sprintf("%s:%d", relPath, src.Line)),
						}
					}
					return slog.Attr{}
				}
			}
			return a
		},
	})

	return slog.New(&contextHandler{Handler: jsonHandler, module: module})
}

// SlogLevel maps a Level onto the closest slog level. Fatal maps to error.
func SlogLevel(l Level) slog.Level {
	switch {
	case l <= LevelDebug:
		return slog.LevelDebug
	case l == LevelInfo:
		return slog.LevelInfo
	case l == LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

type contextHandler struct {
	slog.Handler
	module string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("module", h.module))
	if cID, ok := LookupCorrelationID(ctx); ok {
		r.AddAttrs(slog.String("correlationId", cID))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), module: h.module}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), module: h.module}
}
