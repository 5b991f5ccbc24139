package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level, env string
		want       slog.Level
	}{
		{"debug", "production", slog.LevelDebug},
		{"INFO", "", slog.LevelInfo},
		{"warn", "", slog.LevelWarn},
		{"error", "", slog.LevelError},
		{"", "production", slog.LevelWarn},
		{"", "development", slog.LevelDebug},
		{"bogus", "", slog.LevelDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.level, tt.env), "%q/%q", tt.level, tt.env)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Options{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)
	defer closeFn()

	log.Debug("hidden")
	log.Info("hello", "run_id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "morning", rec["service"])
	assert.Equal(t, "abc", rec["run_id"])
}

func TestNew_TeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morning.log")
	var buf bytes.Buffer
	log, closeFn, err := New(Options{File: path, Output: &buf})
	require.NoError(t, err)

	log.Warn("sent")
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "msg=sent")
	assert.Contains(t, buf.String(), "msg=sent")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, _, err := New(Options{Format: "xml"})
	assert.Error(t, err)
}
