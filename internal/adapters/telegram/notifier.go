package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/pkg/logger"
)

// Notifier pushes report digests to a Telegram chat.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a Telegram notifier. Returns nil when no token is
// configured; the caller treats a nil notifier as "channel disabled".
func NewNotifier(cfg config.TelegramConfig) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, nil
	}
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required when a bot token is set")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{api: bot, chatID: cfg.ChatID}, nil
}

// SendReportSummary sends the daily report digest to the configured chat.
func (n *Notifier) SendReportSummary(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	logger.Debug("report summary sent to telegram", zap.Int64("chat_id", n.chatID))
	return nil
}
