package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/model"
)

// telegramAPIBase is the Bot API host. Overridable in tests.
const telegramAPIBase = "https://api.telegram.org"

// telegramTimeout bounds one sendMessage call.
const telegramTimeout = 5 * time.Second

// TelegramChannel posts the alert to a chat via the Telegram Bot API.
// It is disabled unless both the bot token and the target chat id are
// configured.
type TelegramChannel struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewTelegramChannel builds the channel from notify config.
func NewTelegramChannel(cfg config.NotifyConfig) *TelegramChannel {
	return &TelegramChannel{
		token:   cfg.TelegramBotToken,
		chatID:  cfg.TelegramChatID,
		baseURL: telegramAPIBase,
		client:  &http.Client{Timeout: telegramTimeout},
	}
}

// NewTelegramChannelWithBase builds the channel against a custom API
// base URL, for tests.
func NewTelegramChannelWithBase(cfg config.NotifyConfig, baseURL string) *TelegramChannel {
	ch := NewTelegramChannel(cfg)
	ch.baseURL = baseURL
	return ch
}

func (t *TelegramChannel) Name() string {
	return "telegram"
}

func (t *TelegramChannel) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts the formatted alert to the configured chat.
func (t *TelegramChannel) Send(ctx context.Context, f model.Feedback) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID: t.chatID,
		Text:   FormatMessage(f),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal telegram payload")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "telegram request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The Bot API returns a short JSON description on failure;
		// keep a bounded snippet for the log line.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}
