// Package discord delivers the composed message by direct message, falling
// back to a channel webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

// MaxMessageLength is Discord's per-message character limit.
const MaxMessageLength = 2000

// ErrNoRoute is returned when neither a DM target nor a webhook is configured.
var ErrNoRoute = errors.New("no delivery method available (no DM user and no webhook)")

type Config struct {
	BotToken   string
	UserID     string
	WebhookURL string
	Timeout    time.Duration
}

type dmFunc func(ctx context.Context, userID, content string) error

type Sender struct {
	userID     string
	webhookURL string
	dmSend     dmFunc
	http       *http.Client
	log        *slog.Logger
}

type Option func(*Sender)

func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) { s.log = l }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(s *Sender) { s.http = hc }
}

// NewSender builds a REST-only bot session when a token is configured. No
// gateway connection is opened.
func NewSender(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &Sender{
		userID:     cfg.UserID,
		webhookURL: cfg.WebhookURL,
		http:       &http.Client{Timeout: cfg.Timeout},
		log:        slog.Default(),
	}
	if cfg.BotToken != "" && cfg.UserID != "" {
		session, err := discordgo.New("Bot " + cfg.BotToken)
		if err != nil {
			return nil, fmt.Errorf("creating Discord session: %w", err)
		}
		session.Client = &http.Client{Timeout: cfg.Timeout}
		s.dmSend = sessionDM(session)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func sessionDM(session *discordgo.Session) dmFunc {
	return func(ctx context.Context, userID, content string) error {
		ch, err := session.UserChannelCreate(userID, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("opening DM channel: %w", err)
		}
		_, err = session.ChannelMessageSend(ch.ID, content, discordgo.WithContext(ctx))
		return err
	}
}

// Send delivers content in chunks of at most MaxMessageLength characters.
// The DM route is tried first; on any DM failure the webhook receives the
// full message.
func (s *Sender) Send(ctx context.Context, content string) error {
	chunks := splitMessage(content, MaxMessageLength)
	s.log.Debug("delivering message", "size", humanize.Bytes(uint64(len(content))), "chunks", len(chunks))

	if s.dmSend != nil && s.userID != "" {
		err := s.sendAll(chunks, func(c string) error { return s.dmSend(ctx, s.userID, c) })
		if err == nil {
			s.log.Info("message delivered", "route", "dm")
			return nil
		}
		s.log.Warn("DM send failed", "error", err)
		if s.webhookURL == "" {
			return fmt.Errorf("sending DM: %w", err)
		}
	}
	if s.webhookURL != "" {
		if err := s.sendAll(chunks, func(c string) error { return s.postWebhook(ctx, c) }); err != nil {
			return err
		}
		s.log.Info("message delivered", "route", "webhook")
		return nil
	}
	return ErrNoRoute
}

func (s *Sender) sendAll(chunks []string, send func(string) error) error {
	for i, chunk := range chunks {
		if err := send(chunk); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

func (s *Sender) postWebhook(ctx context.Context, content string) error {
	body, _ := json.Marshal(map[string]string{"content": content})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// splitMessage cuts s into chunks of at most maxLen runes, preferring to
// break after the last newline inside the window.
func splitMessage(s string, maxLen int) []string {
	if utf8.RuneCountInString(s) <= maxLen {
		return []string{s}
	}
	var chunks []string
	for len(s) > 0 {
		end := runeOffset(s, maxLen)
		// Try to split at a newline
		if end < len(s) {
			if idx := strings.LastIndex(s[:end], "\n"); idx > 0 {
				end = idx + 1
			}
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

// runeOffset returns the byte offset just past the first n runes of s.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
