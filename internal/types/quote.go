package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteDirection indicates how the last close moved against the previous close.
type QuoteDirection string

const (
	QuoteDirectionUp   QuoteDirection = "up"
	QuoteDirectionDown QuoteDirection = "down"
	QuoteDirectionFlat QuoteDirection = "flat"
)

// Quote is the latest-quote header for a symbol: last close, previous close,
// and the change between them. Change and ChangePercent are rounded for
// display; Last and Previous keep the raw values.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Time          time.Time       `json:"time"`
	Last          float64         `json:"last"`
	Previous      float64         `json:"previous"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Direction     QuoteDirection  `json:"direction"`
}

// NewQuote derives a Quote from the last two bars of a series. A single-bar
// series yields a flat quote with zero change.
func NewQuote(series []Bar) Quote {
	if len(series) == 0 {
		return Quote{Direction: QuoteDirectionFlat, Change: decimal.Zero, ChangePercent: decimal.Zero}
	}

	last := series[len(series)-1]
	quote := Quote{
		Symbol:        last.Symbol,
		Time:          last.Time,
		Last:          last.Close,
		Previous:      last.Close,
		Change:        decimal.Zero,
		ChangePercent: decimal.Zero,
		Direction:     QuoteDirectionFlat,
	}

	if len(series) < 2 {
		return quote
	}

	prev := series[len(series)-2]
	quote.Previous = prev.Close

	lastDec := decimal.NewFromFloat(last.Close)
	prevDec := decimal.NewFromFloat(prev.Close)
	change := lastDec.Sub(prevDec)

	quote.Change = change.Round(2)
	quote.ChangePercent = change.Div(prevDec).Mul(decimal.NewFromInt(100)).Round(2)

	switch {
	case change.IsPositive():
		quote.Direction = QuoteDirectionUp
	case change.IsNegative():
		quote.Direction = QuoteDirectionDown
	default:
		quote.Direction = QuoteDirectionFlat
	}

	return quote
}
