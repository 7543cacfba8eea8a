package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("timer", "test message")

	content, err := os.ReadFile(filepath.Join(dataDir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[timer]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("timer", "debug message")
	logger.Info("timer", "info message")
	logger.Warn("timer", "warn message")
	logger.Error("timer", "error message")

	content, err := os.ReadFile(filepath.Join(dataDir, LogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic.
	logger.Info("timer", "test message")
	logger.Debug("timer", "debug message")
	logger.Warn("timer", "warn message")
	logger.Error("timer", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("tracking", `project created: "Work"`)

	content, err := os.ReadFile(filepath.Join(dataDir, LogFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	// Format: [timestamp] [INFO] [tracking] message
	line := lines[0]
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[tracking]")
	assert.Contains(t, line, `project created: "Work"`)
}

func TestLogger_Close(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info("timer", "test message")

	err := logger.Close()
	assert.NoError(t, err)
	assert.FileExists(t, filepath.Join(dataDir, LogFileName))
}

func TestLogger_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested")

	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("timer", "test message")

	stat, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
