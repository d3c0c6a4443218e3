// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by the
// packaging client and the shellpkg CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON *Logger writing to os.Stderr for the given role
// label (e.g. "shellpkg"). Entries carry "role", a timestamp and a "func"
// caller field holding the fully-qualified function name. The level is Info
// until changed with [Logger.WithLevelName].
func NewLogger(role string) *Logger {
	return newLogger(os.Stderr, role)
}

// NewConsoleLogger is like [NewLogger] but renders human-readable lines,
// which is what the CLI uses by default.
func NewConsoleLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, role)
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).
		Level(zerolog.InfoLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevelName returns a copy of l filtered at the named level
// ("debug", "info", "warn", ...). An empty name keeps the current level.
func (l *Logger) WithLevelName(name string) (*Logger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger stored in ctx by zerolog's WithContext. If
// none is attached zerolog's fallback logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// restyLogger routes resty's internal diagnostics into zerolog.
type restyLogger struct {
	zerolog.Logger
}

// NewRestyLogger adapts zl to resty.Logger so transport warnings end up in
// the same structured stream as the client's own log lines.
func NewRestyLogger(zl zerolog.Logger) resty.Logger {
	return restyLogger{zl.With().Str("component", "resty").Logger()}
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.Error().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.Debug().Msgf(strings.TrimSpace(format), v...)
}
