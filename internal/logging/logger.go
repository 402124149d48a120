// Package logging provides a unified logging interface for the gpsdocfg
// tool. It abstracts the underlying logging implementation, allowing
// consistent structured logging across components while keeping zerolog
// out of the call sites.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the unified logging interface used across the application.
type Logger interface {
	// Debug logs a debug message (search internals, timing, counters).
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Error logs an error message with the associated error.
	Error(msg string, err error, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Dur creates a duration-like field from a Stringer-compatible value.
func Dur(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new Logger backed by zerolog.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a Logger writing to w with sensible defaults:
// warn level unless the GPSDOCFG_LOG environment variable names another
// zerolog level ("debug", "info", ...).
func NewDefaultLogger(w io.Writer) *ZerologAdapter {
	level := zerolog.WarnLevel
	if env := os.Getenv("GPSDOCFG_LOG"); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}
	return NewZerologAdapter(
		zerolog.New(w).Level(level).With().Timestamp().Logger(),
	)
}

// Debug logs a debug message with structured fields.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.emit(z.logger.Debug(), msg, fields)
}

// Info logs an informational message with structured fields.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.emit(z.logger.Info(), msg, fields)
}

// Error logs an error message with the associated error.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.emit(z.logger.Error().Err(err), msg, fields)
}

func (z *ZerologAdapter) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}
