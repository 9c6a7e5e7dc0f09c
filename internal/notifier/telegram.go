package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Telegram caps messages at 4096 chars; leave headroom for safety.
const maxMessageLen = 4000

// TelegramNotifier sends messages via the Telegram Bot API. Long reports
// are split on line boundaries; continuation parts are sent without parse
// mode and without a notification sound.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
	logger   zerolog.Logger
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		logger: log.With().Str("component", "telegram").Logger(),
	}
}

func (t *TelegramNotifier) Name() string { return "telegram" }

// Send delivers the text, splitting it into parts when it exceeds the
// Telegram limit. Each part is retried with exponential backoff.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	parts := splitMessage(text, maxMessageLen)
	for i, part := range parts {
		if err := t.sendPart(ctx, part, i == 0); err != nil {
			return fmt.Errorf("send part %d/%d: %w", i+1, len(parts), err)
		}
		if i < len(parts)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}
	}
	return nil
}

func (t *TelegramNotifier) sendPart(ctx context.Context, text string, first bool) error {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)
	payload := map[string]interface{}{
		"chat_id":                  t.chatID,
		"text":                     text,
		"disable_web_page_preview": true,
	}
	if first {
		payload["parse_mode"] = "Markdown"
	} else {
		payload["disable_notification"] = true
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := t.client.Do(req)
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 2 * time.Minute
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

// splitMessage splits text on line boundaries so every part fits max.
// A single line longer than max is hard-cut.
func splitMessage(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}
	var parts []string
	var current []string
	length := 0
	for _, line := range strings.Split(text, "\n") {
		for len(line) > max {
			if len(current) > 0 {
				parts = append(parts, strings.Join(current, "\n"))
				current, length = nil, 0
			}
			parts = append(parts, line[:max])
			line = line[max:]
		}
		if length+len(line)+1 > max && len(current) > 0 {
			parts = append(parts, strings.Join(current, "\n"))
			current, length = nil, 0
		}
		current = append(current, line)
		length += len(line) + 1
	}
	if len(current) > 0 {
		parts = append(parts, strings.Join(current, "\n"))
	}
	return parts
}
