package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// QuoteSource - market data API (CoinGecko)
type QuoteSource interface {
	// Get USD quotes for all tracked assets in one call.
	// Any failure here aborts the tick: no partial data reaches the channel.
	Quotes(ctx context.Context) (QuoteSet, error)

	// Get the global USD index value (/exchange_rates endpoint).
	USDIndex(ctx context.Context) (decimal.Decimal, error)
}

// RateSource - local-currency order book (Nobitex)
type RateSource interface {
	// Mid-price of the best bid and best ask. The caller decides what
	// to substitute on failure.
	BestRate(ctx context.Context) (decimal.Decimal, error)
}

// Messenger - the channel message surface (Telegram)
type Messenger interface {
	// Read destination metadata to prove the bot can reach it.
	VerifyDestination(dest string) error

	// Send a new message, return its id.
	SendText(dest, text string) (int, error)

	// Edit a previously sent message in place.
	EditText(dest string, messageID int, text string) error
}
