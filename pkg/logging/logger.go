// Package logging provides the structured logger shared by tabstop components.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a structured logger scoped to one component.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger writing to w. A nil writer means stderr.
func NewLogger(w io.Writer, component string, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(w, opts)

	logger := slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "tabstop"),
	)

	return &Logger{Logger: logger}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(discardHandler{})}
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *Logger) *Logger {
	if l == nil || l.Logger == nil {
		return Discard()
	}
	return l
}

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// WithComponent returns a logger whose component attribute is replaced.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("component", component))}
}

// Lifecycle logs engage/disengage transitions.
func (l *Logger) Lifecycle(action string, engaged bool) {
	l.Debug("lifecycle",
		slog.String("action", action),
		slog.Bool("engaged", engaged),
	)
}

// SubscriberPanicked logs a recovered panic from a navigation subscriber.
func (l *Logger) SubscriberPanicked(subscriberID uint64, signal string, value any, stack []byte) {
	l.Error("navigation subscriber panicked",
		slog.Uint64("subscriber_id", subscriberID),
		slog.String("signal", signal),
		slog.Any("panic", value),
		slog.String("stack", string(stack)),
	)
}

// PortalTransition logs a fired tab-stop portal rule.
func (l *Logger) PortalTransition(rule, from, to string, portalling bool) {
	l.Debug("portal transition",
		slog.String("rule", rule),
		slog.String("from", from),
		slog.String("to", to),
		slog.Bool("portalling", portalling),
	)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
