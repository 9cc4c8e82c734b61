package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches daily bars from the Yahoo Finance chart API. It is the
// default provider because it covers index and futures symbols (e.g. ^TWII,
// WTX=F) without an API key.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewYahooClient creates a Yahoo provider. baseURL overrides the endpoint
// for testing; empty selects the public API.
func NewYahooClient(baseURL string) *YahooClient {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}

	return &YahooClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// yahooChartResponse is the top-level container of the chart API payload.
type yahooChartResponse struct {
	Chart yahooChartData `json:"chart"`
}

type yahooChartData struct {
	Result []yahooChartResult `json:"result"`
	Error  *yahooAPIError     `json:"error"`
}

type yahooAPIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChartResult struct {
	Timestamp  []int64         `json:"timestamp"`
	Indicators yahooIndicators `json:"indicators"`
}

type yahooIndicators struct {
	Quote []yahooQuote `json:"quote"`
}

// Price arrays use pointers because Yahoo emits null for sessions that have
// no data yet.
type yahooQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// FetchDaily implements the Provider interface.
func (c *YahooClient) FetchDaily(ctx context.Context, symbol string, lookbackDays int) ([]types.Bar, error) {
	if symbol == "" {
		return nil, errors.New(errors.ErrCodeInvalidSymbol, "symbol is required")
	}

	now := time.Now()
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("period1", fmt.Sprintf("%d", now.AddDate(0, 0, -lookbackDays).Unix()))
	query.Set("period2", fmt.Sprintf("%d", now.Unix()))

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, "failed to build Yahoo chart request", err)
	}

	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; warroom/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeFetchFailed, err, "failed to fetch Yahoo chart for %s", symbol)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrCodeFetchFailed, "Yahoo chart request for %s returned status %d", symbol, resp.StatusCode)
	}

	var payload yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeParseFailed, err, "failed to decode Yahoo chart response for %s", symbol)
	}

	return c.barsFromChart(symbol, payload)
}

func (c *YahooClient) barsFromChart(symbol string, payload yahooChartResponse) ([]types.Bar, error) {
	if payload.Chart.Error != nil {
		return nil, errors.Newf(errors.ErrCodeFetchFailed, "Yahoo chart error for %s: %s (%s)",
			symbol, payload.Chart.Error.Description, payload.Chart.Error.Code)
	}

	if len(payload.Chart.Result) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no data available for symbol %s", symbol)
	}

	result := payload.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no data available for symbol %s", symbol)
	}

	quote := result.Indicators.Quote[0]
	bars := make([]types.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}

		// Skip unfilled sessions.
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}

		var volume float64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = float64(*quote.Volume[i])
		}

		// Truncate to the trading date so intraday-updated last bars dedupe
		// against themselves across refreshes.
		day := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)

		bars = append(bars, types.Bar{
			Symbol: symbol,
			Time:   day,
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: volume,
		})
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no data available for symbol %s", symbol)
	}

	return sortAndDedupe(bars), nil
}
