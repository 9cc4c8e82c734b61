package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/twquant/warroom/internal/config"
	"github.com/twquant/warroom/mocks"
	"github.com/twquant/warroom/pkg/errors"
	"github.com/twquant/warroom/pkg/marketdata"
	"github.com/twquant/warroom/pkg/marketdata/provider"
)

type ServiceTestSuite struct {
	suite.Suite

	ctrl         *gomock.Controller
	mockProvider *mocks.MockProvider
	service      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProvider = mocks.NewMockProvider(suite.ctrl)

	cfg := config.DefaultConfig()
	cfg.RefreshCron = ""

	clients := map[provider.ProviderType]*marketdata.Client{
		provider.ProviderYahoo: marketdata.NewClientWithProvider(suite.mockProvider, 0),
	}

	suite.service = NewServiceWithClients(cfg, clients, nil)
}

func (suite *ServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ServiceTestSuite) TestSymbols() {
	symbols := suite.service.Symbols()
	suite.Len(symbols, 2)
	suite.Equal("^TWII", symbols[0].Ticker)
	suite.Equal("WTX=F", symbols[1].Ticker)
}

func (suite *ServiceTestSuite) TestSnapshotFetchesAndComputes() {
	bars := mocks.GenerateQuarter("^TWII")
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(bars, nil).
		Times(1)

	snapshot, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.NoError(err)
	suite.Equal("^TWII", snapshot.Ticker)
	suite.Equal("TAIEX", snapshot.Name)
	suite.Len(snapshot.Bars, len(bars))
	suite.Equal(bars[len(bars)-1].Close, snapshot.Quote.Last)
	suite.False(snapshot.FetchedAt.IsZero())

	// Index 0 carries the fixed stochastic seed.
	suite.Equal(50.0, snapshot.Bars[0].K)
	suite.Equal(50.0, snapshot.Bars[0].D)
}

func (suite *ServiceTestSuite) TestSnapshotServedFromCache() {
	bars := mocks.GenerateQuarter("^TWII")
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(bars, nil).
		Times(1)

	first, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.NoError(err)

	// Second call must not hit the provider again.
	second, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.NoError(err)
	suite.Equal(first.FetchedAt, second.FetchedAt)
}

func (suite *ServiceTestSuite) TestSnapshotUnknownSymbol() {
	_, err := suite.service.Snapshot(context.Background(), "AAPL")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSymbolNotConfigured))
}

func (suite *ServiceTestSuite) TestSnapshotPropagatesFetchError() {
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(nil, errors.New(errors.ErrCodeNoDataFound, "no data"))

	_, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFetchFailed))
}

func (suite *ServiceTestSuite) TestSnapshotRejectsInvalidSeries() {
	bars := mocks.GenerateQuarter("^TWII")
	bars[10].Close = 0

	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(bars, nil)

	_, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.Error(err)
	suite.True(errors.IsInvalidInputError(err))
}

func (suite *ServiceTestSuite) TestRefreshFetchesAllSymbols() {
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(mocks.GenerateQuarter("^TWII"), nil).
		Times(1)
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "WTX=F", 90).
		Return(mocks.GenerateQuarter("WTX=F"), nil).
		Times(1)

	results := suite.service.Refresh(context.Background())
	suite.Len(results, 2)
	suite.Equal("^TWII", results[0].Ticker)
	suite.NoError(results[0].Err)
	suite.Equal("WTX=F", results[1].Ticker)
	suite.NoError(results[1].Err)
}

func (suite *ServiceTestSuite) TestRefreshDropsCache() {
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(mocks.GenerateQuarter("^TWII"), nil).
		Times(2)
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "WTX=F", 90).
		Return(mocks.GenerateQuarter("WTX=F"), nil).
		Times(1)

	_, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.NoError(err)

	// Refresh bypasses the still-fresh cache entry.
	results := suite.service.Refresh(context.Background())
	suite.Len(results, 2)
}

func (suite *ServiceTestSuite) TestRefreshFailingSymbolIsIsolated() {
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(mocks.GenerateQuarter("^TWII"), nil)
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "WTX=F", 90).
		Return(nil, errors.New(errors.ErrCodeFetchFailed, "upstream down"))

	results := suite.service.Refresh(context.Background())
	suite.Len(results, 2)
	suite.NoError(results[0].Err)
	suite.Error(results[1].Err)

	// The healthy symbol is cached and fully usable.
	snapshot, err := suite.service.Snapshot(context.Background(), "^TWII")
	suite.NoError(err)
	suite.NotEmpty(snapshot.Bars)
}

func (suite *ServiceTestSuite) TestChart() {
	suite.mockProvider.EXPECT().
		FetchDaily(gomock.Any(), "^TWII", 90).
		Return(mocks.GenerateQuarter("^TWII"), nil)

	chart, err := suite.service.Chart(context.Background(), "^TWII")
	suite.NoError(err)
	suite.Equal("^TWII", chart.Ticker)
	suite.Equal("TAIEX", chart.Name)
	suite.NotEmpty(chart.Candles)
	suite.Equal(80.0, chart.KD.Overbought)
}

func (suite *ServiceTestSuite) TestChartUnknownSymbol() {
	_, err := suite.service.Chart(context.Background(), "AAPL")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSymbolNotConfigured))
}

func (suite *ServiceTestSuite) TestStartAutoRefreshDisabled() {
	stop, err := suite.service.StartAutoRefresh()
	suite.NoError(err)
	suite.NotNil(stop)
	stop()
}

func (suite *ServiceTestSuite) TestStartAutoRefreshInvalidCron() {
	cfg := config.DefaultConfig()
	cfg.RefreshCron = "not a cron spec"

	service := NewServiceWithClients(cfg, map[provider.ProviderType]*marketdata.Client{}, nil)

	_, err := service.StartAutoRefresh()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ServiceTestSuite) TestSnapshotMissingClient() {
	cfg := config.DefaultConfig()
	service := NewServiceWithClients(cfg, map[provider.ProviderType]*marketdata.Client{}, nil)

	_, err := service.Snapshot(context.Background(), "^TWII")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeProviderRequired))
}
