package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/twquant/warroom/pkg/errors"
	"github.com/twquant/warroom/pkg/marketdata/provider"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaultConfig() {
	cfg := DefaultConfig()

	suite.Equal(provider.ProviderYahoo, cfg.Provider)
	suite.Equal(90, cfg.LookbackDays)
	suite.Equal(60, cfg.CacheTTLSeconds)
	suite.Len(cfg.Symbols, 2)
	suite.Equal("^TWII", cfg.Symbols[0].Ticker)
}

func (suite *ConfigTestSuite) TestParseOverridesDefaults() {
	cfg, err := Parse([]byte(`
listen_addr: ":9000"
provider: binance
lookback_days: 120
cache_ttl_seconds: 30
symbols:
  - ticker: BTCUSDT
    name: Bitcoin
`))
	suite.NoError(err)
	suite.Equal(":9000", cfg.ListenAddr)
	suite.Equal(provider.ProviderBinance, cfg.Provider)
	suite.Equal(120, cfg.LookbackDays)
	suite.Equal(30*time.Second, cfg.CacheTTL())
	suite.Len(cfg.Symbols, 1)
	suite.Equal("BTCUSDT", cfg.Symbols[0].Ticker)
}

func (suite *ConfigTestSuite) TestParseInvalidYAML() {
	_, err := Parse([]byte("symbols: ["))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestParseInvalidProvider() {
	_, err := Parse([]byte(`
provider: csv
symbols:
  - ticker: X
    name: X
`))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestParseSymbolMissingName() {
	_, err := Parse([]byte(`
symbols:
  - ticker: X
`))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestParseEmptySymbolsRejected() {
	_, err := Parse([]byte("symbols: []"))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestLoadFromFile() {
	dir := suite.T().TempDir()
	path := filepath.Join(dir, "warroom.yaml")
	suite.NoError(os.WriteFile(path, []byte(`
symbols:
  - ticker: "^TWII"
    name: TAIEX
    provider: yahoo
`), 0o600))

	cfg, err := Load(path)
	suite.NoError(err)
	suite.Len(cfg.Symbols, 1)
	// Defaults still hold for everything not overridden.
	suite.Equal(60, cfg.CacheTTLSeconds)
}

func (suite *ConfigTestSuite) TestLoadMissingFile() {
	_, err := Load("/does/not/exist.yaml")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestProviderFor() {
	cfg := DefaultConfig()
	cfg.Provider = provider.ProviderYahoo

	suite.Equal(provider.ProviderYahoo, cfg.ProviderFor(SymbolConfig{Ticker: "^TWII"}))
	suite.Equal(provider.ProviderBinance, cfg.ProviderFor(SymbolConfig{
		Ticker:   "BTCUSDT",
		Provider: provider.ProviderBinance,
	}))
}

func (suite *ConfigTestSuite) TestPolygonAPIKeyEnv() {
	cfg := DefaultConfig()
	cfg.PolygonAPIKeyEnv = "WARROOM_TEST_POLYGON_KEY"

	suite.T().Setenv("WARROOM_TEST_POLYGON_KEY", "secret")
	suite.Equal("secret", cfg.PolygonAPIKey())
}
