package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter pushes security warnings to the operators' chat: blocked
// tickets being scanned, devices tripping the rate governor. With no token it
// degrades to a no-op so local setups run without a bot.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, security alerts disabled")
		return &TelegramAlerter{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramAlerter) AlertBlockedScan(ctx context.Context, codeHash string, sctx domain.SessionContext) {
	text := fmt.Sprintf(
		"*Blocked ticket scanned*\n\n"+"Code hash: `%s`\n"+"Device: %s\n"+"Gate: %s\n"+"Event: %s",
		codeHash, sctx.DeviceID, sctx.Gate, sctx.SelectedEventID,
	)
	n.send(ctx, text)
}

func (n *TelegramAlerter) AlertRateLimited(ctx context.Context, deviceID string, retryAfter time.Duration) {
	text := fmt.Sprintf(
		"*Device rate limited*\n\n"+"Device: %s\n"+"Cooldown: %s",
		deviceID, retryAfter.Round(time.Second),
	)
	n.send(ctx, text)
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
