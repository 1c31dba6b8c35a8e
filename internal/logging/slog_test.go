package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufferLogger(slog.LevelDebug)
	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()
	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLoggerLevels(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelDebug)
		logger.Debug("scan started", "args", 4)

		output := buf.String()
		assert.Contains(t, output, "scan started")
		assert.Contains(t, output, "args=4")
		assert.Contains(t, output, "level=DEBUG")
	})

	t.Run("info", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelInfo)
		logger.Info("configuration built", "processes", 3)

		output := buf.String()
		assert.Contains(t, output, "configuration built")
		assert.Contains(t, output, "processes=3")
		assert.Contains(t, output, "level=INFO")
	})

	t.Run("warn", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelWarn)
		logger.Warn("unknown broadcast protocol", "value", "bogus")

		output := buf.String()
		assert.Contains(t, output, "unknown broadcast protocol")
		assert.Contains(t, output, "value=bogus")
		assert.Contains(t, output, "level=WARN")
	})

	t.Run("error", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelError)
		logger.Error("subscriber panicked", "event", "WorkerStarted")

		output := buf.String()
		assert.Contains(t, output, "subscriber panicked")
		assert.Contains(t, output, "event=WorkerStarted")
		assert.Contains(t, output, "level=ERROR")
	})
}

func TestSlogLoggerFiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)
	logger.Debug("hidden")
	logger.Info("hidden")
	require.Empty(t, buf.String())
}
