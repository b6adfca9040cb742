package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config - глобальная конфигурация бота
type Config struct {
	Telegram TelegramConfig
	Market   MarketConfig
	Updates  UpdatesConfig
}

type TelegramConfig struct {
	BotToken  string
	ChannelID string // numeric id ("-100...") or "@channelname"
}

type MarketConfig struct {
	CoinGeckoURL    string
	NobitexURL      string
	OrderbookSymbol string
	Timeout         time.Duration
}

type UpdatesConfig struct {
	Interval      time.Duration
	ShowTimestamp bool
	Timezone      string
}

// LoadConfig - загружает настройки из ENV (.env подхватывается в main через godotenv)
func LoadConfig() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	channelID := os.Getenv("TELEGRAM_CHANNEL_ID")
	if channelID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHANNEL_ID is not set")
	}

	timeout, err := getDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	interval, err := getDuration("UPDATE_INTERVAL", 300*time.Second)
	if err != nil {
		return nil, err
	}

	showTimestamp, err := getBool("SHOW_TIMESTAMP", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Telegram: TelegramConfig{
			BotToken:  token,
			ChannelID: channelID,
		},
		Market: MarketConfig{
			CoinGeckoURL:    getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
			NobitexURL:      getEnv("NOBITEX_URL", "https://api.nobitex.ir"),
			OrderbookSymbol: getEnv("ORDERBOOK_SYMBOL", "USDTIRT"),
			Timeout:         timeout,
		},
		Updates: UpdatesConfig{
			Interval:      interval,
			ShowTimestamp: showTimestamp,
			Timezone:      getEnv("TIMEZONE", "Asia/Tehran"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
