package notifier

import (
	"fmt"

	"github.com/pkolodziej/rain-alert/internal/telegram"
)

// TelegramNotifier delivers notifications to a single Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a Telegram notifier for the given credentials
func NewTelegramNotifier(botToken, chatID string, insecure bool) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID, insecure)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram client: %w", err)
	}
	return &TelegramNotifier{client: client}, nil
}

// Notify sends the message to the configured chat
func (n *TelegramNotifier) Notify(message string) error {
	if err := n.client.SendMessage(message); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}
