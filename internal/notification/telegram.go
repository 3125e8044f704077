package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
)

// TelegramNotifier posts booking events to the academy's admin chat. With an
// empty token it degrades to a no-op so local runs work without a bot.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*New booking (awaiting payment)*\n\n%sUser: %s",
		slotLine(b.Slot), b.UserID,
	))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Booking confirmed*\n\n%sUser: %s\nPaid: %s",
		slotLine(b.Slot), b.UserID, b.AmountPaid.StringFixed(2),
	))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	reason := b.CancellationReason
	if reason == "" {
		reason = "not given"
	}
	n.send(ctx, fmt.Sprintf(
		"*Booking cancelled*\n\n%sUser: %s\nReason: %s",
		slotLine(b.Slot), b.UserID, reason,
	))
}

func slotLine(s *domain.Slot) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("Sport: %s\nDate: %s %s-%s\n", s.SportName, s.Date, s.StartTime, s.EndTime)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}
	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat)", logger.String("text", text))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
