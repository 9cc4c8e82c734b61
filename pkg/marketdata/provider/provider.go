// Package provider implements daily-bar data sources for the dashboard.
// Every provider returns an ordered, deduplicated daily series; the
// indicator engine performs its own validation on top of that.
package provider

import (
	"context"
	"sort"

	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderYahoo   ProviderType = "yahoo"
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// Provider is the data-source collaborator: it supplies an ordered,
// deduplicated daily bar series for a symbol, or a typed "no data" error.
// Timeouts and cancellation flow through the context; retry policy belongs
// to the caller, never to the indicator engine.
type Provider interface {
	// FetchDaily returns the trailing lookbackDays of daily bars for the
	// symbol, sorted ascending by timestamp with duplicates removed.
	FetchDaily(ctx context.Context, symbol string, lookbackDays int) ([]types.Bar, error)
}

// Config carries provider-specific settings for the factory.
type Config struct {
	// PolygonAPIKey is required for the polygon provider.
	PolygonAPIKey string
	// YahooBaseURL overrides the Yahoo endpoint. Empty means the public API.
	YahooBaseURL string
}

// NewProvider creates a new market data provider based on the provider type.
func NewProvider(providerType ProviderType, config Config) (Provider, error) {
	switch providerType {
	case ProviderYahoo:
		return NewYahooClient(config.YahooBaseURL), nil
	case ProviderPolygon:
		return NewPolygonClient(config.PolygonAPIKey)
	case ProviderBinance:
		return NewBinanceClient(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}

// sortAndDedupe orders bars ascending by timestamp and drops duplicate
// timestamps, keeping the last occurrence. Providers occasionally repeat the
// most recent session while it is still being assembled upstream.
func sortAndDedupe(bars []types.Bar) []types.Bar {
	if len(bars) == 0 {
		return bars
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Time.Before(bars[j].Time)
	})

	out := bars[:0]
	for _, bar := range bars {
		if len(out) > 0 && out[len(out)-1].Time.Equal(bar.Time) {
			out[len(out)-1] = bar

			continue
		}

		out = append(out, bar)
	}

	return out
}
