package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Emax-dev/Bot/internal/bot"
	"github.com/Emax-dev/Bot/internal/config"
	"github.com/Emax-dev/Bot/internal/infrastructure/coingecko"
	"github.com/Emax-dev/Bot/internal/infrastructure/nobitex"
	"github.com/Emax-dev/Bot/internal/infrastructure/telegram"
	"github.com/Emax-dev/Bot/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Updates.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tgBot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		logger.Error("failed to init telegram bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tgBot.Debug = false
	logger.Info("Telegram bot authorized", slog.String("username", tgBot.Self.UserName))

	quotes := coingecko.NewClient(cfg.Market.CoinGeckoURL, cfg.Market.Timeout)
	book := nobitex.NewClient(cfg.Market.NobitexURL, cfg.Market.OrderbookSymbol, cfg.Market.Timeout)
	messenger := telegram.NewMessenger(tgBot)

	updater := usecase.NewUpdater(
		quotes,
		book,
		messenger,
		cfg.Telegram.ChannelID,
		cfg.Updates.Interval,
		cfg.Updates.ShowTimestamp,
		loc,
		logger,
	)

	handler := bot.NewHandler(tgBot, updater, quotes, cfg.Telegram.ChannelID, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting bot...",
		slog.String("channel", cfg.Telegram.ChannelID),
		slog.Duration("interval", cfg.Updates.Interval))

	go handler.Start(ctx)

	<-ctx.Done()
	logger.Info("Bot stopped gracefully")
}
