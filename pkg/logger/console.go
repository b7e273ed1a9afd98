package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// ConsoleHandler implements slog.Handler, writing one JSON event per line
// to stdout.
type ConsoleHandler struct {
	level slog.Level
}

func NewConsoleHandler(level slog.Level) slog.Handler {
	return &ConsoleHandler{level: level}
}

func (h *ConsoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"level":   r.Level.String(),
		"message": r.Message,
		"time":    r.Time.Format(time.RFC3339Nano),
	}

	r.Attrs(func(a slog.Attr) bool {
		event[a.Key] = a.Value.Any()
		return true
	})

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	return &consoleAttrsHandler{handler: &newH, attrs: attrs}
}

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	// Flat event format — groups are ignored
	return h
}

// wrapper that injects static attrs
type consoleAttrsHandler struct {
	handler *ConsoleHandler
	attrs   []slog.Attr
}

func (h *consoleAttrsHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *consoleAttrsHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range h.attrs {
		r.AddAttrs(a)
	}
	return h.handler.Handle(ctx, r)
}

func (h *consoleAttrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &consoleAttrsHandler{handler: h.handler, attrs: all}
}

func (h *consoleAttrsHandler) WithGroup(name string) slog.Handler {
	return h
}
