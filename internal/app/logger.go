package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/config"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Records logged with a context that carries an event ID get an event_id attribute.
// Output is always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(eventIDHandler{Handler: handler})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// eventIDHandler stamps records with the event being dispatched, if any.
type eventIDHandler struct {
	slog.Handler
}

func (h eventIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := ctxutil.EventIDFromCtx(ctx); id != uuid.Nil {
		r.AddAttrs(slog.String("event_id", id.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h eventIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return eventIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h eventIDHandler) WithGroup(name string) slog.Handler {
	return eventIDHandler{Handler: h.Handler.WithGroup(name)}
}
