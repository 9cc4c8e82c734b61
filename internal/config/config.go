// Package config loads and validates the warroom YAML configuration.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/twquant/warroom/pkg/errors"
	"github.com/twquant/warroom/pkg/marketdata/provider"
)

// SymbolConfig describes one dashboard symbol.
type SymbolConfig struct {
	// Ticker is the provider-facing symbol, e.g. "^TWII" or "WTX=F".
	Ticker string `yaml:"ticker" validate:"required"`
	// Name is the display name shown on the dashboard.
	Name string `yaml:"name" validate:"required"`
	// Provider overrides the default provider for this symbol.
	Provider provider.ProviderType `yaml:"provider" validate:"omitempty,oneof=yahoo polygon binance"`
}

// Config is the top-level warroom configuration.
type Config struct {
	// ListenAddr is the HTTP listen address for serve mode.
	ListenAddr string `yaml:"listen_addr" validate:"required"`
	// Provider is the default market data provider.
	Provider provider.ProviderType `yaml:"provider" validate:"required,oneof=yahoo polygon binance"`
	// PolygonAPIKeyEnv names the environment variable holding the Polygon
	// API key. The key itself never lives in the config file.
	PolygonAPIKeyEnv string `yaml:"polygon_api_key_env"`
	// LookbackDays is the length of the daily window fetched per symbol.
	LookbackDays int `yaml:"lookback_days" validate:"min=1,max=1000"`
	// CacheTTLSeconds is how long a fetched snapshot is served before a
	// refetch. The refresh action bypasses it.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" validate:"min=1"`
	// RefreshCron is the cron spec for the background warm refresh.
	// Empty disables it.
	RefreshCron string `yaml:"refresh_cron"`
	// Symbols is the dashboard symbol set.
	Symbols []SymbolConfig `yaml:"symbols" validate:"required,min=1,dive"`
}

// DefaultConfig returns the configuration matching the original dashboard:
// two Taiwan market symbols, a three-month daily window and a 60 second cache.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      ":8480",
		Provider:        provider.ProviderYahoo,
		LookbackDays:    90,
		CacheTTLSeconds: 60,
		RefreshCron:     "@every 5m",
		Symbols: []SymbolConfig{
			{Ticker: "^TWII", Name: "TAIEX"},
			{Ticker: "WTX=F", Name: "TAIEX Futures"},
		},
	}
}

// Load reads a YAML config file, fills defaults and validates the result.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(content)
}

// Parse decodes YAML config content, fills defaults and validates the result.
func Parse(content []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return cfg, nil
}

// CacheTTL returns the cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// PolygonAPIKey resolves the Polygon API key from the configured
// environment variable.
func (c Config) PolygonAPIKey() string {
	if c.PolygonAPIKeyEnv == "" {
		return os.Getenv("POLYGON_API_KEY")
	}

	return os.Getenv(c.PolygonAPIKeyEnv)
}

// ProviderFor returns the provider type for a symbol, falling back to the
// default provider.
func (c Config) ProviderFor(symbol SymbolConfig) provider.ProviderType {
	if symbol.Provider != "" {
		return symbol.Provider
	}

	return c.Provider
}
