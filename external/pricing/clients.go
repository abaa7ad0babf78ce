package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const httpRequestUserAgent = "VoiceTradingAssistant/1.0"

// tickerClient fetches the last traded price for one exchange's native
// symbol format.
type tickerClient interface {
	lastPrice(ctx context.Context, pair string) (float64, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func fetchJSON(ctx context.Context, client *http.Client, baseURL, endpoint string, params url.Values, out any) error {
	apiURL := baseURL + endpoint
	if len(params) > 0 {
		apiURL = apiURL + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", httpRequestUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ticker endpoint returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parsePriceString(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable price %q: %w", s, err)
	}
	return v, nil
}

type binanceClient struct {
	httpClient *http.Client
	baseURL    string
}

func (c *binanceClient) lastPrice(ctx context.Context, pair string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", strings.ReplaceAll(pair, "/", ""))
	var payload struct {
		Price string `json:"price"`
	}
	if err := fetchJSON(ctx, c.httpClient, c.baseURL, "/api/v3/ticker/price", params, &payload); err != nil {
		return 0, err
	}
	return parsePriceString(payload.Price)
}

type okxClient struct {
	httpClient *http.Client
	baseURL    string
}

func (c *okxClient) lastPrice(ctx context.Context, pair string) (float64, error) {
	params := url.Values{}
	params.Set("instId", strings.ReplaceAll(pair, "/", "-"))
	var payload struct {
		Data []struct {
			Last string `json:"last"`
		} `json:"data"`
	}
	if err := fetchJSON(ctx, c.httpClient, c.baseURL, "/api/v5/market/ticker", params, &payload); err != nil {
		return 0, err
	}
	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("no ticker data for %s", pair)
	}
	return parsePriceString(payload.Data[0].Last)
}

type bybitClient struct {
	httpClient *http.Client
	baseURL    string
}

func (c *bybitClient) lastPrice(ctx context.Context, pair string) (float64, error) {
	params := url.Values{}
	params.Set("category", "spot")
	params.Set("symbol", strings.ReplaceAll(pair, "/", ""))
	var payload struct {
		Result struct {
			List []struct {
				LastPrice string `json:"lastPrice"`
			} `json:"list"`
		} `json:"result"`
	}
	if err := fetchJSON(ctx, c.httpClient, c.baseURL, "/v5/market/tickers", params, &payload); err != nil {
		return 0, err
	}
	if len(payload.Result.List) == 0 {
		return 0, fmt.Errorf("no ticker data for %s", pair)
	}
	return parsePriceString(payload.Result.List[0].LastPrice)
}

type deribitClient struct {
	httpClient *http.Client
	baseURL    string
}

func (c *deribitClient) lastPrice(ctx context.Context, pair string) (float64, error) {
	params := url.Values{}
	params.Set("instrument_name", strings.ReplaceAll(pair, "/", "_"))
	var payload struct {
		Result struct {
			LastPrice float64 `json:"last_price"`
		} `json:"result"`
	}
	if err := fetchJSON(ctx, c.httpClient, c.baseURL, "/api/v2/public/ticker", params, &payload); err != nil {
		return 0, err
	}
	return payload.Result.LastPrice, nil
}
