package coingecko

import "github.com/shopspring/decimal"

// simplePriceResponse - ответ /simple/price: asset id -> { "usd": 65000 }
type simplePriceResponse map[string]struct {
	USD decimal.Decimal `json:"usd"`
}

// exchangeRatesResponse - ответ /exchange_rates (нужен только usd)
type exchangeRatesResponse struct {
	Rates map[string]struct {
		Name  string          `json:"name"`
		Unit  string          `json:"unit"`
		Value decimal.Decimal `json:"value"`
	} `json:"rates"`
}
