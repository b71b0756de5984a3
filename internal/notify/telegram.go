package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// telegramBaseURL is the Telegram Bot API host.
	telegramBaseURL = "https://api.telegram.org"
	// telegramTimeout bounds a single delivery; a slow delivery must not
	// stall the poll cycle that triggered it.
	telegramTimeout = 10 * time.Second
)

// TelegramConfig describes the bot credentials for alert delivery.
type TelegramConfig struct {
	// Token is the bot API token.
	Token string
	// ChatID is the destination chat.
	ChatID string
	// BaseURL overrides the Telegram API host, used in tests.
	BaseURL string
}

// TelegramNotifier delivers alerts through a Telegram bot.
type TelegramNotifier struct {
	token  string
	chatID string
	rc     *resty.Client
}

func NewTelegramNotifier(cfg TelegramConfig) (*TelegramNotifier, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if strings.TrimSpace(cfg.ChatID) == "" {
		return nil, fmt.Errorf("telegram chat id is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = telegramBaseURL
	}

	return &TelegramNotifier{
		token:  cfg.Token,
		chatID: cfg.ChatID,
		rc:     resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")).SetTimeout(telegramTimeout),
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, title, body string) error {
	text := fmt.Sprintf("<b>%s</b>\n%s", title, body)

	resp, err := n.rc.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":    n.chatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post("/bot" + n.token + "/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("telegram send: unexpected status %d", resp.StatusCode())
	}

	return nil
}
