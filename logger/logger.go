/*
 * Package logger is the structured logging sink the archive engine's
 * writer, extractor, remover and verifier report through. The archive
 * engine never imports logrus directly outside this package -- it only
 * sees the Logger interface, so the CLI front end (out of scope for this
 * module) can inject its own colorized sink without the core knowing.
 */
package logger

import (
	"github.com/sirupsen/logrus"
)

// Level mirrors the severities the archive engine reports at: a warning
// for a degraded but non-fatal condition (timestamp restore failure, a
// mixed-mode append), an error for an operation-ending failure, info for
// per-entry progress, and debug for internal tracing.
type Level uint8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger is the injected logging capability. The engine's operations call
// it from the goroutine that invoked them, not from worker-pool
// goroutines.
type Logger interface {
	Log(level Level, msg string)
	Logf(level Level, pattern string, args ...any)
}

type logrusLogger struct {
	entry *logrus.Logger
}

// New wraps an existing *logrus.Logger as a Logger. Passing nil returns a
// fresh logger with logrus's defaults.
func New(base *logrus.Logger) Logger {
	if base == nil {
		base = logrus.New()
	}
	return &logrusLogger{entry: base}
}

func (l *logrusLogger) Log(level Level, msg string) {
	l.entry.Log(level.logrus(), msg)
}

func (l *logrusLogger) Logf(level Level, pattern string, args ...any) {
	l.entry.Logf(level.logrus(), pattern, args...)
}

type nop struct{}

// NewNop returns a Logger that discards everything, for tests and for
// callers that don't want logging.
func NewNop() Logger { return nop{} }

func (nop) Log(Level, string)          {}
func (nop) Logf(Level, string, ...any) {}
