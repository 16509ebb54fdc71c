// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the mlsolid
// client and its CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given
// role label (e.g. "mlsolid-client").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewConsoleLogger writes human-readable lines to os.Stderr. It is the
// default for SDK users who did not pass their own logger, so that run
// start/end messages show up in a terminal the way a notebook user expects.
func NewConsoleLogger(role string) *Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(l zerolog.Logger) *Logger {
	return &Logger{l}
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithRun returns a child logger tagged with the run and experiment ids.
func (l *Logger) WithRun(runID, experimentID string) *Logger {
	return &Logger{l.With().
		Str("run_id", runID).
		Str("experiment_id", experimentID).
		Logger()}
}

// FromContext returns the zerolog.Logger attached to ctx with
// zerolog.Logger.WithContext. When ctx carries no enabled logger, fallback
// is returned.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return &Logger{*l}
}
