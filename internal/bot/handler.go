package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Emax-dev/Bot/internal/domain"
	"github.com/Emax-dev/Bot/internal/usecase"
)

type Handler struct {
	bot       *tgbotapi.BotAPI
	updater   *usecase.Updater
	quotes    domain.QuoteSource
	channelID string
	logger    *slog.Logger
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	updater *usecase.Updater,
	quotes domain.QuoteSource,
	channelID string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		updater:   updater,
		quotes:    quotes,
		channelID: channelID,
		logger:    logger,
	}
}

func (h *Handler) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			switch update.Message.Command() {
			case "start":
				go h.cmdStart(ctx, update.Message)
			case "status":
				go h.cmdStatus(ctx, update.Message)
			}

		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return
		}
	}
}

// --- Commands ---

func (h *Handler) cmdStart(ctx context.Context, msg *tgbotapi.Message) {
	h.logger.Debug("received /start command", slog.Int64("chat", msg.Chat.ID))

	err := h.updater.Start(ctx)
	switch {
	case err == nil:
		// Успех молчаливый: результат виден в самом канале.
	case errors.Is(err, usecase.ErrAlreadyRunning):
		h.send(msg.Chat.ID, "Price updates are already running.")
	default:
		h.logger.Error("bootstrap failed", slog.String("error", err.Error()))
		h.send(msg.Chat.ID, fmt.Sprintf(
			"Error starting the bot. Please check:\n"+
				"1. The bot is an admin in the channel\n"+
				"2. The bot has permission to send and edit messages\n"+
				"3. The channel ID is correct\n"+
				"Error details: %v\n"+
				"Channel ID used: %s", err, h.channelID))
	}
}

func (h *Handler) cmdStatus(ctx context.Context, msg *tgbotapi.Message) {
	var sb strings.Builder
	sb.WriteString("📊 Status\n")

	if messageID, ok := h.updater.TrackedMessage(); ok {
		sb.WriteString(fmt.Sprintf("├ Tracked message: #%d\n", messageID))
		sb.WriteString(fmt.Sprintf("├ Interval: %s\n", h.updater.Interval()))
	} else {
		sb.WriteString("├ Updates not started (/start to begin)\n")
	}

	if usd, err := h.quotes.USDIndex(ctx); err != nil {
		h.logger.Error("usd index unavailable", slog.String("error", err.Error()))
		sb.WriteString("└ USD index: unavailable")
	} else {
		sb.WriteString(fmt.Sprintf("└ USD index: %s (CoinGecko)", usd.String()))
	}

	h.send(msg.Chat.ID, sb.String())
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send reply", slog.String("error", err.Error()))
	}
}
