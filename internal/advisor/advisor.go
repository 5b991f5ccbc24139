// Package advisor asks a language model for a short, warm suggestion based
// on the day's weather message.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chris/morning/internal/llm"
)

// ErrEmptySuggestion is returned when the model replies with no text.
var ErrEmptySuggestion = errors.New("llm returned an empty suggestion")

const (
	requestSuffix = "，给出健康、出行、穿衣等建议"
	replyPrefix   = "✨ 温馨提示：\n"
)

type Advisor struct {
	client llm.Client
	prompt string
	log    *slog.Logger
}

type Option func(*Advisor)

// WithPrompt overrides the system prompt.
func WithPrompt(p string) Option {
	return func(a *Advisor) { a.prompt = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Advisor) { a.log = l }
}

func New(client llm.Client, opts ...Option) *Advisor {
	a := &Advisor{client: client, prompt: llm.SystemPrompt, log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Suggest returns the suggestion block for weatherMsg.
func (a *Advisor) Suggest(ctx context.Context, weatherMsg string) (string, error) {
	resp, err := a.client.Chat(ctx, a.prompt, []llm.Message{
		{Role: "user", Content: weatherMsg + requestSuffix},
	})
	if err != nil {
		return "", fmt.Errorf("llm chat: %w", err)
	}
	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		return "", ErrEmptySuggestion
	}
	a.log.Debug("suggestion received", "chars", len([]rune(reply)))
	return replyPrefix + reply, nil
}
