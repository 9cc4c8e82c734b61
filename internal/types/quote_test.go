package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type QuoteTestSuite struct {
	suite.Suite
}

func TestQuoteSuite(t *testing.T) {
	suite.Run(t, new(QuoteTestSuite))
}

func (suite *QuoteTestSuite) TestNewQuoteUp() {
	bars := dailyBars(100, 102.5)
	quote := NewQuote(bars)

	suite.Equal("^TWII", quote.Symbol)
	suite.Equal(bars[1].Time, quote.Time)
	suite.Equal(102.5, quote.Last)
	suite.Equal(100.0, quote.Previous)
	suite.Equal("2.5", quote.Change.String())
	suite.Equal("2.5", quote.ChangePercent.String())
	suite.Equal(QuoteDirectionUp, quote.Direction)
}

func (suite *QuoteTestSuite) TestNewQuoteDown() {
	quote := NewQuote(dailyBars(200, 199))

	suite.Equal("-1", quote.Change.String())
	suite.Equal("-0.5", quote.ChangePercent.String())
	suite.Equal(QuoteDirectionDown, quote.Direction)
}

func (suite *QuoteTestSuite) TestNewQuoteFlat() {
	quote := NewQuote(dailyBars(150, 150))

	suite.True(quote.Change.IsZero())
	suite.True(quote.ChangePercent.IsZero())
	suite.Equal(QuoteDirectionFlat, quote.Direction)
}

func (suite *QuoteTestSuite) TestNewQuoteSingleBar() {
	quote := NewQuote(dailyBars(150))

	suite.Equal(150.0, quote.Last)
	suite.Equal(150.0, quote.Previous)
	suite.True(quote.Change.IsZero())
	suite.Equal(QuoteDirectionFlat, quote.Direction)
}

func (suite *QuoteTestSuite) TestNewQuoteEmpty() {
	quote := NewQuote(nil)

	suite.Equal(QuoteDirectionFlat, quote.Direction)
	suite.True(quote.Change.IsZero())
}

func (suite *QuoteTestSuite) TestNewQuoteRounding() {
	quote := NewQuote(dailyBars(3, 4))

	suite.Equal("1", quote.Change.String())
	// 1/3 * 100 rounded to two decimal places.
	suite.Equal("33.33", quote.ChangePercent.String())
}
