// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts the original default logger back after a test replaces it.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name  string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.name)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)

	var buf logger.TestLogBuffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")

	l.Info("hidden message")
	l.Warn("visible message", "component", "test")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible message", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])
}

func TestSetupInvalidLevelWarns(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "chatty"}, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level configured")
	assert.Contains(t, buf.String(), "chatty")
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextHandlerAddsTraceID(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	ctx := logger.WithRequestID(context.Background(), "req-123")
	l.InfoContext(ctx, "with id")
	l.Info("without id")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-123", entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestContextHandlerKeepsAttrsAndGroups(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	ctx := logger.WithRequestID(context.Background(), "req-9")
	l.With("component", "svc").WithGroup("req").InfoContext(ctx, "grouped", "path", "/x")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "svc", entries[0]["component"])
	group, ok := entries[0]["req"].(map[string]interface{})
	require.True(t, ok, "group should be an object")
	assert.Equal(t, "/x", group["path"])
}

func TestContextLoggerRoundTrip(t *testing.T) {
	def := slog.Default()
	l, _ := logger.GetTestLogger(t)

	assert.Same(t, def, logger.FromContext(context.Background()))
	assert.Same(t, l, logger.FromContext(logger.WithLogger(context.Background(), l)))

	other, _ := logger.GetTestLogger(t)
	assert.Same(t, other, logger.FromContextOrDefault(context.Background(), other))

	assert.Empty(t, logger.RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", logger.RequestIDFromContext(logger.WithRequestID(context.Background(), "abc")))
}
