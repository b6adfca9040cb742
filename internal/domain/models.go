package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteSet - USD quotes for the tracked assets, exactly as the market API
// returned them (no rounding happens before rendering).
type QuoteSet struct {
	Bitcoin  decimal.Decimal
	Ethereum decimal.Decimal
	Solana   decimal.Decimal
	Tether   decimal.Decimal
}

// Snapshot - one tick worth of data. Built fresh each cycle, rendered,
// then discarded.
type Snapshot struct {
	Quotes   QuoteSet
	USDTRate decimal.Decimal // USDT -> IRR
	At       time.Time
}
