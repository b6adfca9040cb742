package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("TELEGRAM_CHANNEL_ID", "-1001234567890")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Telegram.BotToken != "123456:test-token" {
		t.Errorf("unexpected token: %s", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.ChannelID != "-1001234567890" {
		t.Errorf("unexpected channel: %s", cfg.Telegram.ChannelID)
	}
	if cfg.Market.CoinGeckoURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("unexpected coingecko url: %s", cfg.Market.CoinGeckoURL)
	}
	if cfg.Market.NobitexURL != "https://api.nobitex.ir" {
		t.Errorf("unexpected nobitex url: %s", cfg.Market.NobitexURL)
	}
	if cfg.Market.OrderbookSymbol != "USDTIRT" {
		t.Errorf("unexpected symbol: %s", cfg.Market.OrderbookSymbol)
	}
	if cfg.Market.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.Market.Timeout)
	}
	if cfg.Updates.Interval != 300*time.Second {
		t.Errorf("unexpected interval: %s", cfg.Updates.Interval)
	}
	if cfg.Updates.ShowTimestamp {
		t.Error("timestamp must be off by default")
	}
	if cfg.Updates.Timezone != "Asia/Tehran" {
		t.Errorf("unexpected timezone: %s", cfg.Updates.Timezone)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		chat  string
	}{
		{name: "missing token", token: "", chat: "-100"},
		{name: "missing channel", token: "123:abc", chat: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", tt.token)
			t.Setenv("TELEGRAM_CHANNEL_ID", tt.chat)

			if _, err := LoadConfig(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("UPDATE_INTERVAL", "1m")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("SHOW_TIMESTAMP", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Updates.Interval != time.Minute {
		t.Errorf("unexpected interval: %s", cfg.Updates.Interval)
	}
	if cfg.Market.Timeout != 3*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.Market.Timeout)
	}
	if !cfg.Updates.ShowTimestamp {
		t.Error("SHOW_TIMESTAMP=true not applied")
	}
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	setRequired(t)
	t.Setenv("SHOW_TIMESTAMP", "yes please")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("UPDATE_INTERVAL", "five minutes")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error, got nil")
	}
}
