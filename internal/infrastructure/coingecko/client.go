package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Emax-dev/Bot/internal/domain"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Один запрос на все четыре актива, чтобы не упираться в rate limit CoinGecko.
const simplePricePath = "/simple/price?ids=bitcoin,ethereum,solana,tether&vs_currencies=usd"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient принимает timeout явно: без него зависший апстрим
// растягивает тик на неопределенное время.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// --- Implementation of domain.QuoteSource ---

// Quotes возвращает котировки ровно как в теле ответа, без округления.
// Fallback-пути нет: любая ошибка здесь отменяет весь тик.
func (c *Client) Quotes(ctx context.Context) (domain.QuoteSet, error) {
	var prices simplePriceResponse
	if err := c.get(ctx, simplePricePath, &prices); err != nil {
		return domain.QuoteSet{}, err
	}

	quotes := domain.QuoteSet{}
	for id, dst := range map[string]*decimal.Decimal{
		"bitcoin":  &quotes.Bitcoin,
		"ethereum": &quotes.Ethereum,
		"solana":   &quotes.Solana,
		"tether":   &quotes.Tether,
	} {
		q, ok := prices[id]
		if !ok {
			return domain.QuoteSet{}, fmt.Errorf("coingecko: quote for %s missing", id)
		}
		*dst = q.USD
	}

	return quotes, nil
}

func (c *Client) USDIndex(ctx context.Context) (decimal.Decimal, error) {
	var rates exchangeRatesResponse
	if err := c.get(ctx, "/exchange_rates", &rates); err != nil {
		return decimal.Zero, err
	}

	usd, ok := rates.Rates["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("coingecko: usd rate missing")
	}

	return usd.Value, nil
}

// --- Private Helpers ---

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("coingecko: failed to parse response: %w", err)
	}

	return nil
}
