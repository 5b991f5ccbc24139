package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New("not a cron", time.UTC, func(context.Context, time.Time) error { return nil }, nil)
	assert.Error(t, err)
}

func TestRunOnce_PassesLocalTime(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	var got time.Time
	s, err := New("30 7 * * *", loc, func(_ context.Context, now time.Time) error {
		got = now
		return nil
	}, nil)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 4, 11, 23, 30, 0, 0, time.UTC) }

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 12, got.Day())
	assert.Equal(t, 7, got.Hour())
}

func TestRunOnce_LogsRunIDAndError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("weather down")
	s, err := New("30 7 * * *", time.UTC, func(context.Context, time.Time) error { return boom }, testLogger(&buf))
	require.NoError(t, err)

	assert.ErrorIs(t, s.RunOnce(context.Background()), boom)
	assert.Contains(t, buf.String(), "run_id=")
	assert.Contains(t, buf.String(), "daily message run failed")
	assert.Contains(t, buf.String(), "weather down")
}

func TestStartStop_Next(t *testing.T) {
	var buf bytes.Buffer
	s, err := New("30 7 * * *", time.UTC, func(context.Context, time.Time) error { return nil }, testLogger(&buf))
	require.NoError(t, err)

	s.Start()
	next := s.Next()
	<-s.Stop().Done()

	assert.False(t, next.IsZero())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.Contains(t, buf.String(), "scheduler started")
}
