package nobitex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.nobitex.ir"

var two = decimal.NewFromInt(2)

// orderbookResponse - ответ /v2/orderbook/{symbol}.
// Уровни приходят строками: [["58400","1.5"], ...], decimal их понимает как есть.
type orderbookResponse struct {
	Status string              `json:"status"`
	Bids   [][]decimal.Decimal `json:"bids"`
	Asks   [][]decimal.Decimal `json:"asks"`
}

type Client struct {
	baseURL    string
	symbol     string
	httpClient *http.Client
}

func NewClient(baseURL, symbol string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		symbol:     symbol,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// --- Implementation of domain.RateSource ---

// BestRate возвращает середину между лучшим бидом и лучшим аском,
// точно (bid+ask)/2 без промежуточных float.
func (c *Client) BestRate(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v2/orderbook/%s", c.baseURL, c.symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("nobitex: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("nobitex: unexpected status %d", resp.StatusCode)
	}

	var book orderbookResponse
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return decimal.Zero, fmt.Errorf("nobitex: failed to parse orderbook: %w", err)
	}

	if len(book.Bids) == 0 || len(book.Bids[0]) == 0 ||
		len(book.Asks) == 0 || len(book.Asks[0]) == 0 {
		return decimal.Zero, fmt.Errorf("nobitex: empty orderbook for %s", c.symbol)
	}

	bestBid := book.Bids[0][0]
	bestAsk := book.Asks[0][0]

	return bestBid.Add(bestAsk).Div(two), nil
}
