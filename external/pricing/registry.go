package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/pricing"
)

var supportedExchanges = []string{"okx", "bybit", "deribit", "binance"}

// Registry maps exchange ids to concrete ticker clients. The mapping is
// finite and validated at construction; an unmapped id is a typed failure,
// never a dynamic dispatch.
type Registry struct {
	clients   map[string]tickerClient
	attempts  int
	baseDelay time.Duration
}

func NewRegistry(cfg *config.Config) (*Registry, error) {
	httpClient := newHTTPClient(cfg.PriceRequestTimeout)
	clients := map[string]tickerClient{
		"binance": &binanceClient{httpClient: httpClient, baseURL: cfg.BinanceBaseURL},
		"okx":     &okxClient{httpClient: httpClient, baseURL: cfg.OKXBaseURL},
		"bybit":   &bybitClient{httpClient: httpClient, baseURL: cfg.BybitBaseURL},
		"deribit": &deribitClient{httpClient: httpClient, baseURL: cfg.DeribitBaseURL},
	}
	for _, id := range supportedExchanges {
		if _, ok := clients[id]; !ok {
			return nil, fmt.Errorf("no ticker client constructed for exchange %s", id)
		}
	}
	return &Registry{
		clients:   clients,
		attempts:  cfg.PriceRetryAttempts,
		baseDelay: cfg.PriceRetryBaseDelay,
	}, nil
}

// LastPrice fetches the last traded price with bounded retries and a
// doubling backoff. This is the only retried operation in the system.
func (r *Registry) LastPrice(ctx context.Context, exchangeID, pair string) (float64, error) {
	client, ok := r.clients[exchangeID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", pricing.ErrUnsupportedExchange, exchangeID)
	}

	delay := r.baseDelay
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		price, err := client.lastPrice(ctx, pair)
		if err == nil {
			return price, nil
		}
		lastErr = err
		slog.Error("price lookup attempt failed",
			"exchange", exchangeID, "pair", pair, "attempt", attempt, "error", err)
		if attempt == r.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %v", pricing.ErrPriceUnavailable, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
	return 0, fmt.Errorf("%w: %v", pricing.ErrPriceUnavailable, lastErr)
}
