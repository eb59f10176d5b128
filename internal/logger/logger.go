// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// version-gen.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains request-scoped
// loggers of the preview server via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
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

// Options tune the logger built by NewLogger.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...). Empty
	// means info.
	Level string
	// Silent disables all output.
	Silent bool
	// Console switches from JSON lines to zerolog's human-readable console
	// writer, as used by the CLI.
	Console bool
	// NoColor strips ANSI colour codes from console output. Set it when the
	// writer is not a terminal.
	NoColor bool
	// Writer receives the output; os.Stderr when nil.
	Writer io.Writer
}

// ParseLevel resolves a level name, defaulting to info for an empty name.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(level)
}

// NewLogger constructs a *Logger for the given role label (e.g. "generate",
// "serve").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. An unparsable level falls back
// to info; config validation rejects such values before they get here.
func NewLogger(role string, opts Options) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: opts.NoColor}
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if opts.Silent {
		level = zerolog.Disabled
	}

	ctx := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp()
	if !opts.Console {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// the logging middleware and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
