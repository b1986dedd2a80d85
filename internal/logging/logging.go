// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// that stdout carries only the conversion status lines.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const appName = "meshconv"

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
// An empty string yields warn.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: l,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				a.Key = "severity"
			}
			return a
		},
	}

	var h slog.Handler
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatText, "":
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", format)
	}

	return slog.New(&appHandler{Handler: h}), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// appHandler stamps every record with the application name.
type appHandler struct {
	slog.Handler
}

func (h *appHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("app", appName))
	return h.Handler.Handle(ctx, r)
}

func (h *appHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &appHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *appHandler) WithGroup(name string) slog.Handler {
	return &appHandler{Handler: h.Handler.WithGroup(name)}
}
