package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Quote is a typed price result. Live is false when the price is the
// hard-coded fallback constant rather than a fresh API value.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
	Live   bool
}

// Source provides a reference price for a coin symbol. Prices here are
// decorative context for the user, never settlement input, so a Source
// must always return a usable Quote and never an error.
type Source interface {
	Quote(ctx context.Context, symbol string) Quote
}

// coinIDs maps the bot's coin buttons to CoinGecko asset ids.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"SOL":  "solana",
	"ADA":  "cardano",
	"AVAX": "avalanche-2",
}

// fallbacks are shown when the live lookup fails for any reason.
var fallbacks = map[string]decimal.Decimal{
	"BTC":  decimal.NewFromInt(42000),
	"ETH":  decimal.NewFromInt(2500),
	"SOL":  decimal.NewFromInt(100),
	"ADA":  decimal.RequireFromString("0.45"),
	"AVAX": decimal.NewFromInt(35),
}

// CoinGecko queries the simple-price endpoint with a bounded timeout.
// No retries, no cache: a failed call simply yields the fallback.
type CoinGecko struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewCoinGecko(baseURL string, timeout time.Duration, log *zap.Logger) *CoinGecko {
	return &CoinGecko{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		log:     log,
	}
}

func (c *CoinGecko) Quote(ctx context.Context, symbol string) Quote {
	fallback := Quote{Symbol: symbol, Price: fallbacks[symbol]}

	id, ok := coinIDs[symbol]
	if !ok {
		return fallback
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fallback
	}

	price, err := c.fetch(ctx, id)
	if err != nil {
		c.log.Warn("price lookup failed, using fallback",
			zap.String("symbol", symbol), zap.Error(err))
		return fallback
	}
	return Quote{Symbol: symbol, Price: price, Live: true}
}

func (c *CoinGecko) fetch(ctx context.Context, id string) (decimal.Decimal, error) {
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("simple/price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("simple/price: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read response: %w", err)
	}

	var payload map[string]map[string]float64
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("decode response: %w", err)
	}
	usd, ok := payload[id]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("no usd price for %s in response", id)
	}
	return decimal.NewFromFloat(usd), nil
}
