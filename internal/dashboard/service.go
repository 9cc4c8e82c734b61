// Package dashboard orchestrates the fetch-compute-present cycle: it pulls
// daily series from the configured providers, runs the indicator engine and
// serves cached snapshots to the HTTP API and the TUI.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/twquant/warroom/internal/config"
	"github.com/twquant/warroom/internal/indicator"
	"github.com/twquant/warroom/internal/logger"
	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
	"github.com/twquant/warroom/pkg/marketdata"
	"github.com/twquant/warroom/pkg/marketdata/provider"
)

// Snapshot is one symbol's fetched-and-computed state.
type Snapshot struct {
	Ticker    string              `json:"ticker"`
	Name      string              `json:"name"`
	Quote     types.Quote         `json:"quote"`
	Bars      []types.IndicatorBar `json:"bars"`
	FetchedAt time.Time           `json:"fetched_at"`
}

// RefreshResult reports the outcome of one symbol's refresh cycle.
type RefreshResult struct {
	Ticker string
	Err    error
}

// Service wires providers, the indicator engine and the snapshot cache.
// Each symbol's fetch-and-compute cycle is independent; a failing symbol
// never blocks the others.
type Service struct {
	cfg     config.Config
	engine  *indicator.Engine
	clients map[provider.ProviderType]*marketdata.Client
	cache   *snapshotCache
	log     *logger.Logger
	cron    *cron.Cron
}

// NewService builds a service from config, constructing one market data
// client per distinct provider type the symbol set needs.
func NewService(cfg config.Config, log *logger.Logger) (*Service, error) {
	clients := make(map[provider.ProviderType]*marketdata.Client)

	for _, symbol := range cfg.Symbols {
		providerType := cfg.ProviderFor(symbol)
		if _, ok := clients[providerType]; ok {
			continue
		}

		client, err := marketdata.NewClient(marketdata.ClientConfig{
			ProviderType:  providerType,
			PolygonAPIKey: cfg.PolygonAPIKey(),
		})
		if err != nil {
			return nil, err
		}

		clients[providerType] = client
	}

	return NewServiceWithClients(cfg, clients, log), nil
}

// NewServiceWithClients builds a service around pre-built clients.
// Used by tests to inject stub providers.
func NewServiceWithClients(cfg config.Config, clients map[provider.ProviderType]*marketdata.Client, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Service{
		cfg:     cfg,
		engine:  indicator.NewEngine(),
		clients: clients,
		cache:   newSnapshotCache(cfg.CacheTTL()),
		log:     log,
	}
}

// Symbols returns the configured symbol set, in config order.
func (s *Service) Symbols() []config.SymbolConfig {
	return s.cfg.Symbols
}

// Snapshot returns the symbol's snapshot, served from cache while fresh.
func (s *Service) Snapshot(ctx context.Context, ticker string) (Snapshot, error) {
	symbol, ok := s.symbolConfig(ticker)
	if !ok {
		return Snapshot{}, errors.Newf(errors.ErrCodeSymbolNotConfigured, "symbol %s is not configured", ticker)
	}

	if cached := s.cache.Get(ticker); cached.IsSome() {
		return cached.Unwrap(), nil
	}

	snapshot, err := s.fetchAndCompute(ctx, symbol)
	if err != nil {
		return Snapshot{}, err
	}

	s.cache.Put(ticker, snapshot)

	return snapshot, nil
}

// Chart returns the four-panel render payload for the symbol.
func (s *Service) Chart(ctx context.Context, ticker string) (Chart, error) {
	snapshot, err := s.Snapshot(ctx, ticker)
	if err != nil {
		return Chart{}, err
	}

	return BuildChart(snapshot.Ticker, snapshot.Name, snapshot.Bars), nil
}

// Invalidate drops every cached snapshot so the next lookups hit the
// provider again.
func (s *Service) Invalidate() {
	s.cache.Reset()
}

// Refresh drops the cache and refetches every configured symbol. This is
// the dashboard's refresh button.
func (s *Service) Refresh(ctx context.Context) []RefreshResult {
	s.Invalidate()

	return s.warm(ctx)
}

// warm fetches all configured symbols concurrently, one goroutine per
// symbol. Results come back in config order; failures are per-symbol and
// non-fatal.
func (s *Service) warm(ctx context.Context) []RefreshResult {
	results := make([]RefreshResult, len(s.cfg.Symbols))

	var wg sync.WaitGroup

	for i, symbol := range s.cfg.Symbols {
		wg.Add(1)

		go func(i int, symbol config.SymbolConfig) {
			defer wg.Done()

			_, err := s.Snapshot(ctx, symbol.Ticker)
			results[i] = RefreshResult{Ticker: symbol.Ticker, Err: err}

			if err != nil {
				s.log.Warn("symbol refresh failed",
					zap.String("ticker", symbol.Ticker),
					zap.Error(err))
			}
		}(i, symbol)
	}

	wg.Wait()

	return results
}

// StartAutoRefresh schedules the background warm refresh if a cron spec is
// configured. Returns a no-op stop function when disabled.
func (s *Service) StartAutoRefresh() (stop func(), err error) {
	if s.cfg.RefreshCron == "" {
		return func() {}, nil
	}

	c := cron.New()

	_, err = c.AddFunc(s.cfg.RefreshCron, func() {
		results := s.Refresh(context.Background())

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}

		s.log.Info("auto refresh completed",
			zap.Int("symbols", len(results)),
			zap.Int("failed", failed))
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid refresh cron spec %q", s.cfg.RefreshCron)
	}

	c.Start()
	s.cron = c

	return func() { c.Stop() }, nil
}

func (s *Service) symbolConfig(ticker string) (config.SymbolConfig, bool) {
	for _, symbol := range s.cfg.Symbols {
		if symbol.Ticker == ticker {
			return symbol, true
		}
	}

	return config.SymbolConfig{}, false
}

func (s *Service) fetchAndCompute(ctx context.Context, symbol config.SymbolConfig) (Snapshot, error) {
	client, ok := s.clients[s.cfg.ProviderFor(symbol)]
	if !ok {
		return Snapshot{}, errors.Newf(errors.ErrCodeProviderRequired, "no client for provider %s", s.cfg.ProviderFor(symbol))
	}

	bars, err := client.FetchDaily(ctx, marketdata.FetchParams{
		Symbol:       symbol.Ticker,
		LookbackDays: s.cfg.LookbackDays,
	})
	if err != nil {
		return Snapshot{}, errors.Wrapf(errors.ErrCodeFetchFailed, err, "failed to fetch series for %s", symbol.Ticker)
	}

	indicatorBars, err := s.engine.Compute(bars)
	if err != nil {
		return Snapshot{}, errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "failed to compute indicators for %s", symbol.Ticker)
	}

	return Snapshot{
		Ticker:    symbol.Ticker,
		Name:      symbol.Name,
		Quote:     types.NewQuote(bars),
		Bars:      indicatorBars,
		FetchedAt: time.Now(),
	}, nil
}
