package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- splitMessage ---

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   []string
	}{
		{"short", "hello", 2000, []string{"hello"}},
		{"exact limit", strings.Repeat("a", 20), 20, []string{strings.Repeat("a", 20)}},
		{"splits at newline", strings.Repeat("a", 15) + "\n" + strings.Repeat("b", 15), 20,
			[]string{strings.Repeat("a", 15) + "\n", strings.Repeat("b", 15)}},
		{"no newline fallback", strings.Repeat("x", 50), 20,
			[]string{strings.Repeat("x", 20), strings.Repeat("x", 20), strings.Repeat("x", 10)}},
		{"empty", "", 2000, []string{""}},
		{"prefers last newline", "line1\nline2\nline3\nline4", 12, []string{"line1\nline2\n", "line3\nline4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitMessage(tt.in, tt.maxLen))
		})
	}
}

func TestSplitMessage_CountsRunes(t *testing.T) {
	s := strings.Repeat("早", 25)
	chunks := splitMessage(s, 10)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 10)
	}
	assert.Equal(t, s, strings.Join(chunks, ""))
}

// --- Send ---

type webhook struct {
	mu       sync.Mutex
	contents []string
	status   int
}

func (w *webhook) server(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.mu.Lock()
		w.contents = append(w.contents, body["content"])
		w.mu.Unlock()
		if w.status != 0 {
			rw.WriteHeader(w.status)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSend_DMFirst(t *testing.T) {
	hook := &webhook{}
	srv := hook.server(t)
	s, err := NewSender(Config{UserID: "42", WebhookURL: srv.URL})
	require.NoError(t, err)

	var got []string
	s.dmSend = func(_ context.Context, userID, content string) error {
		assert.Equal(t, "42", userID)
		got = append(got, content)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), "早安"))
	assert.Equal(t, []string{"早安"}, got)
	assert.Empty(t, hook.contents)
}

func TestSend_FallsBackToWebhook(t *testing.T) {
	hook := &webhook{}
	srv := hook.server(t)
	s, err := NewSender(Config{UserID: "42", WebhookURL: srv.URL})
	require.NoError(t, err)
	s.dmSend = func(context.Context, string, string) error { return errors.New("cannot send messages to this user") }

	msg := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 1500)
	require.NoError(t, s.Send(context.Background(), msg))
	assert.Equal(t, []string{strings.Repeat("a", 1500) + "\n", strings.Repeat("b", 1500)}, hook.contents)
}

func TestSend_WebhookOnly(t *testing.T) {
	hook := &webhook{}
	srv := hook.server(t)
	s, err := NewSender(Config{WebhookURL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), "hi"))
	assert.Equal(t, []string{"hi"}, hook.contents)
}

func TestSend_WebhookError(t *testing.T) {
	hook := &webhook{status: http.StatusNotFound}
	srv := hook.server(t)
	s, err := NewSender(Config{WebhookURL: srv.URL})
	require.NoError(t, err)

	assert.ErrorContains(t, s.Send(context.Background(), "hi"), "status 404")
}

func TestSend_DMErrorWithoutWebhook(t *testing.T) {
	s, err := NewSender(Config{UserID: "42"})
	require.NoError(t, err)
	boom := errors.New("boom")
	s.dmSend = func(context.Context, string, string) error { return boom }

	assert.ErrorIs(t, s.Send(context.Background(), "hi"), boom)
}

func TestSend_NoRoute(t *testing.T) {
	s, err := NewSender(Config{})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Send(context.Background(), "hi"), ErrNoRoute)
}
