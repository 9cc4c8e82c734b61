// Package marketdata wraps the provider layer with configuration
// validation and per-request timeouts. Retry and timeout policy lives
// here, on the fetch side, never inside the indicator engine.
package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
	"github.com/twquant/warroom/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=yahoo polygon binance"`
	PolygonAPIKey string                `validate:"required_if=ProviderType polygon"`
	// YahooBaseURL overrides the Yahoo endpoint, for tests.
	YahooBaseURL string
	// FetchTimeout bounds a single fetch. Zero means DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// FetchParams holds the parameters for a daily-series fetch.
type FetchParams struct {
	Symbol       string `validate:"required"`
	LookbackDays int    `validate:"required,min=1,max=1000"`
}

// DefaultFetchTimeout bounds a single provider fetch when the config does
// not specify one.
const DefaultFetchTimeout = 30 * time.Second

// Client is the market data client responsible for fetching ordered daily
// series from the configured provider.
type Client struct {
	provider provider.Provider
	config   ClientConfig
	validate *validator.Validate
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	p, err := provider.NewProvider(config.ProviderType, provider.Config{
		PolygonAPIKey: config.PolygonAPIKey,
		YahooBaseURL:  config.YahooBaseURL,
	})
	if err != nil {
		return nil, err
	}

	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DefaultFetchTimeout
	}

	return &Client{
		provider: p,
		config:   config,
		validate: validate,
	}, nil
}

// NewClientWithProvider creates a client around an existing provider.
// Used by tests and by callers wiring per-symbol providers.
func NewClientWithProvider(p provider.Provider, fetchTimeout time.Duration) *Client {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	return &Client{
		provider: p,
		config:   ClientConfig{FetchTimeout: fetchTimeout},
		validate: validator.New(),
	}
}

// FetchDaily validates the params and fetches the trailing daily series for
// the symbol, bounded by the configured fetch timeout.
func (c *Client) FetchDaily(ctx context.Context, params FetchParams) ([]types.Bar, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid fetch parameters", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.FetchTimeout)
	defer cancel()

	return c.provider.FetchDaily(ctx, params.Symbol, params.LookbackDays)
}
