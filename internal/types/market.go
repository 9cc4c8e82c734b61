package types

import (
	"math"
	"time"

	"github.com/twquant/warroom/pkg/errors"
)

// Bar is one trading period's open/high/low/close/volume snapshot.
// Bars are immutable once produced by a data source.
type Bar struct {
	Symbol string    `json:"symbol"`
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// ValidateSeries checks the preconditions for indicator computation:
// the series is non-empty, every bar carries finite strictly positive
// open/high/low/close prices, and timestamps are strictly increasing
// (duplicates are rejected). Returns an error with code
// errors.ErrCodeInvalidInput wrapping an errors.InvalidInputError.
func ValidateSeries(series []Bar) error {
	if len(series) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidInput, "invalid series",
			errors.NewInvalidInputError(-1, "", "series is empty"))
	}

	for i, bar := range series {
		if err := validateBarPrices(i, bar); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, "invalid series", err)
		}

		if i > 0 && !series[i-1].Time.Before(bar.Time) {
			return errors.Wrap(errors.ErrCodeInvalidInput, "invalid series",
				errors.NewInvalidInputErrorf(i, bar.Symbol,
					"bar %d timestamp %s is not after previous bar timestamp %s",
					i, bar.Time.Format(time.RFC3339), series[i-1].Time.Format(time.RFC3339)))
		}
	}

	return nil
}

func validateBarPrices(index int, bar Bar) error {
	prices := map[string]float64{
		"open":  bar.Open,
		"high":  bar.High,
		"low":   bar.Low,
		"close": bar.Close,
	}

	// Check in a fixed order so the error message is deterministic.
	for _, field := range []string{"open", "high", "low", "close"} {
		value := prices[field]
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return errors.NewInvalidInputErrorf(index, bar.Symbol,
				"bar %d has non-finite %s price", index, field)
		}

		if value <= 0 {
			return errors.NewInvalidInputErrorf(index, bar.Symbol,
				"bar %d has non-positive %s price %v", index, field, value)
		}
	}

	if bar.Volume < 0 {
		return errors.NewInvalidInputErrorf(index, bar.Symbol,
			"bar %d has negative volume %v", index, bar.Volume)
	}

	return nil
}
