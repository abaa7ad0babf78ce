package pricing

import (
	"context"
	"errors"
)

// ErrUnsupportedExchange reports an exchange id with no registered client.
var ErrUnsupportedExchange = errors.New("unsupported exchange")

// ErrPriceUnavailable reports a lookup that failed after exhausting retries.
var ErrPriceUnavailable = errors.New("failed to fetch price")

// Lookup resolves the last traded price for a BASE/QUOTE pair on a named
// exchange. Used only at order finalization.
type Lookup interface {
	LastPrice(ctx context.Context, exchangeID, pair string) (float64, error)
}
