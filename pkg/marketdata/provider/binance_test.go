package provider

import (
	"testing"
	"time"

	binance "github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/suite"

	"github.com/twquant/warroom/pkg/errors"
)

type BinanceClientTestSuite struct {
	suite.Suite
}

func TestBinanceClientSuite(t *testing.T) {
	suite.Run(t, new(BinanceClientTestSuite))
}

func (suite *BinanceClientTestSuite) TestBarFromKline() {
	openTime := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	kline := &binance.Kline{
		OpenTime: openTime.UnixMilli(),
		Open:     "42000.5",
		High:     "42500.0",
		Low:      "41800.25",
		Close:    "42250.75",
		Volume:   "1234.56",
	}

	bar, err := barFromKline("BTCUSDT", kline)
	suite.NoError(err)
	suite.Equal("BTCUSDT", bar.Symbol)
	suite.Equal(openTime, bar.Time)
	suite.Equal(42000.5, bar.Open)
	suite.Equal(42500.0, bar.High)
	suite.Equal(41800.25, bar.Low)
	suite.Equal(42250.75, bar.Close)
	suite.Equal(1234.56, bar.Volume)
}

func (suite *BinanceClientTestSuite) TestBarFromKlineBadPrice() {
	kline := &binance.Kline{
		OpenTime: time.Now().UnixMilli(),
		Open:     "42000.5",
		High:     "not-a-number",
		Low:      "41800.25",
		Close:    "42250.75",
		Volume:   "1234.56",
	}

	_, err := barFromKline("BTCUSDT", kline)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeParseFailed))
}
