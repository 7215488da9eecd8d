package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the model for display in the
// status bar.
type logRecordMsg struct {
	Summary string
	Level   slog.Level
}

// statusFadeMsg clears the status bar if nothing newer replaced it.
type statusFadeMsg struct {
	seq int
}

// statusFadeDelay is how long a status message stays visible.
const statusFadeDelay = 5 * time.Second

// LogHandler is a slog.Handler that routes records into a bubbletea
// program as messages. Records arriving before SetProgram is called are
// dropped.
//
// Handlers derived via WithAttrs/WithGroup share the program pointer, so
// one SetProgram call reaches every service logger.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	group   string
}

// NewLogHandler creates a handler delivering records at or above level.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program that receives log messages. Safe to call
// from any goroutine.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle implements slog.Handler.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	program.Send(logRecordMsg{
		Summary: handler.summary(record),
		Level:   record.Level,
	})
	return nil
}

// summary renders "message (key=value, ...)".
func (handler *LogHandler) summary(record slog.Record) string {
	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, handler.format(attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, handler.format(attr))
		return true
	})
	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (handler *LogHandler) format(attr slog.Attr) string {
	k := attr.Key
	if handler.group != "" {
		k = handler.group + "." + k
	}
	return fmt.Sprintf("%s=%s", k, attr.Value)
}

// WithAttrs implements slog.Handler.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), attrs...),
		group:   handler.group,
	}
}

// WithGroup implements slog.Handler.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	group := name
	if handler.group != "" {
		group = handler.group + "." + name
	}
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		group:   group,
	}
}
