// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the ledger server and the agreement client.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. Request- and operation-scoped
// loggers travel inside context.Context and are recovered with FromContext or
// FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// LevelEnv overrides the default debug level ("info", "warn", ...).
	LevelEnv = "LOG_LEVEL"
	// ClientLogFileEnv overrides where the client writes its log file.
	ClientLogFileEnv = "AGREEMENT_LOG_FILE"

	clientLogFileName = "agreement-client.log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var setupOnce sync.Once

// setup configures zerolog globals shared by every logger in the process.
func setup() {
	setupOnce.Do(func() {
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			if fn := runtime.FuncForPC(pc); fn != nil {
				return fn.Name()
			}
			return "unknown"
		}
	})
	zerolog.SetGlobalLevel(levelFromEnv())
}

// levelFromEnv parses LOG_LEVEL, falling back to debug on empty or bad input.
func levelFromEnv() zerolog.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

func newLogger(w io.Writer, role string) *Logger {
	setup()
	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger returns a JSON logger writing to stdout, tagged with role
// (e.g. "ledger-server").
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but writes to a file so log lines never
// interleave with the terminal UI. The path comes from AGREEMENT_LOG_FILE or
// defaults to a file next to the executable. Stdout is the fallback when the
// file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(clientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		w = f
	}
	return newLogger(w, role)
}

func clientLogPath() string {
	if p := strings.TrimSpace(os.Getenv(ClientLogFileEnv)); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return clientLogFileName
	}
	return filepath.Join(filepath.Dir(exe), clientLogFileName)
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so the caller can add fields without
// touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one, zerolog's default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
