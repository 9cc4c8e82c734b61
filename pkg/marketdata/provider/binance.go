package provider

import (
	"context"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

// BinanceClient fetches daily klines from Binance for crypto symbols.
// Public kline data needs no API key.
type BinanceClient struct {
	client *binance.Client
}

// NewBinanceClient creates a Binance provider.
func NewBinanceClient() *BinanceClient {
	return &BinanceClient{
		client: binance.NewClient("", ""),
	}
}

// FetchDaily implements the Provider interface.
func (c *BinanceClient) FetchDaily(ctx context.Context, symbol string, lookbackDays int) ([]types.Bar, error) {
	if symbol == "" {
		return nil, errors.New(errors.ErrCodeInvalidSymbol, "symbol is required")
	}

	now := time.Now()
	klines, err := c.client.NewKlinesService().
		Symbol(symbol).
		Interval("1d").
		StartTime(now.AddDate(0, 0, -lookbackDays).UnixMilli()).
		EndTime(now.UnixMilli()).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeFetchFailed, err, "failed to fetch Binance klines for %s", symbol)
	}

	if len(klines) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no data available for symbol %s", symbol)
	}

	bars := make([]types.Bar, 0, len(klines))

	for _, kline := range klines {
		bar, err := barFromKline(symbol, kline)
		if err != nil {
			return nil, err
		}

		bars = append(bars, bar)
	}

	return sortAndDedupe(bars), nil
}

// barFromKline converts a Binance kline (string-encoded prices) into a Bar.
func barFromKline(symbol string, kline *binance.Kline) (types.Bar, error) {
	fields := map[string]string{
		"open":   kline.Open,
		"high":   kline.High,
		"low":    kline.Low,
		"close":  kline.Close,
		"volume": kline.Volume,
	}

	parsed := make(map[string]float64, len(fields))

	for name, raw := range fields {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Bar{}, errors.Wrapf(errors.ErrCodeParseFailed, err,
				"failed to parse Binance kline %s value %q for %s", name, raw, symbol)
		}

		parsed[name] = value
	}

	return types.Bar{
		Symbol: symbol,
		Time:   time.UnixMilli(kline.OpenTime).UTC().Truncate(24 * time.Hour),
		Open:   parsed["open"],
		High:   parsed["high"],
		Low:    parsed["low"],
		Close:  parsed["close"],
		Volume: parsed["volume"],
	}, nil
}
