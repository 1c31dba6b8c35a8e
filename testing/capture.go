package testing

import (
	"sync"

	"github.com/sherryshare/Naiad/types"
)

// LogEntry is one message recorded by a CaptureLogger.
type LogEntry struct {
	Level         string
	Message       string
	KeysAndValues []any
}

// CaptureLogger records every log call for later inspection.
//
// Useful for asserting on warning paths, such as the builder substituting a
// default for an unrecognized enum value. Safe for concurrent use.
type CaptureLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Compile-time assertion that CaptureLogger implements Logger.
var _ types.Logger = (*CaptureLogger)(nil)

// NewCaptureLogger creates an empty capturing logger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

// Entries returns a copy of everything logged so far.
func (l *CaptureLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// EntriesAt returns the recorded messages logged at the given level.
func (l *CaptureLogger) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}

func (l *CaptureLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, KeysAndValues: keysAndValues})
}

// Debug records the message at level "debug".
func (l *CaptureLogger) Debug(msg string, keysAndValues ...any) { l.record("debug", msg, keysAndValues) }

// Info records the message at level "info".
func (l *CaptureLogger) Info(msg string, keysAndValues ...any) { l.record("info", msg, keysAndValues) }

// Warn records the message at level "warn".
func (l *CaptureLogger) Warn(msg string, keysAndValues ...any) { l.record("warn", msg, keysAndValues) }

// Error records the message at level "error".
func (l *CaptureLogger) Error(msg string, keysAndValues ...any) { l.record("error", msg, keysAndValues) }

// Fatal records the message at level "fatal" without exiting, so tests can
// assert on fatal paths.
func (l *CaptureLogger) Fatal(msg string, keysAndValues ...any) { l.record("fatal", msg, keysAndValues) }
