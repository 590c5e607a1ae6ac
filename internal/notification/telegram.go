package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramAnnouncer posts event updates to a single announcement channel.
type TelegramAnnouncer struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	logger    logger.Logger
}

func NewTelegramAnnouncer(token string, channelID int64, logger logger.Logger) (*TelegramAnnouncer, error) {
	if token == "" || channelID == 0 {
		logger.Warn("telegram token or channel is empty, announcements disabled")
		return &TelegramAnnouncer{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAnnouncer{bot: bot, channelID: channelID, logger: logger}, nil
}

func (a *TelegramAnnouncer) AnnounceEventRescheduled(ctx context.Context, event *domain.Event, oldDate time.Time) {
	text := fmt.Sprintf(
		"*Event rescheduled*\n\n"+"%s\n"+"Was: %s\n"+"Now: %s (UTC)\n"+"All applicants have been informed.",
		event.Title,
		oldDate.Format("02.01.2006 15:04"),
		event.EventDate.Format("02.01.2006 15:04"),
	)
	a.send(ctx, text)
}

func (a *TelegramAnnouncer) AnnounceApplicationDecision(ctx context.Context, app *domain.Application) {
	verdict := "confirmed"
	if app.Status == domain.ApplicationStatusRejected {
		verdict = "rejected"
	}
	text := fmt.Sprintf(
		"*Application %s*\n\n"+"Event: %s\n"+"Applicant: %s",
		verdict, app.EventTitle, app.Name,
	)
	a.send(ctx, text)
}

func (a *TelegramAnnouncer) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("announcement skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("announcement skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.channelID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send telegram announcement",
			logger.Int64("chat_id", a.channelID),
			logger.String("error", err.Error()),
		)
	}
}
