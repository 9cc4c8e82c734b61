package indicator

import (
	"github.com/twquant/warroom/internal/types"
)

// Engine transforms an ordered daily bar series into the same series
// augmented with MACD and stochastic KD values. It is a pure function of
// its input: no shared state, no I/O, and each call runs both indicator
// passes over the full series with fresh local accumulators. Safe for
// concurrent use once constructed and configured.
type Engine struct {
	macd  *MACD
	stoch *StochasticKD
}

// NewEngine creates an engine with the default MACD(12,26,9) and
// stochastic KD(9,3,3) configuration.
func NewEngine() *Engine {
	return &Engine{
		macd:  NewMACD(),
		stoch: NewStochasticKD(),
	}
}

// ConfigMACD reconfigures the MACD periods. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (e *Engine) ConfigMACD(params ...any) error {
	return e.macd.Config(params...)
}

// ConfigStochastic reconfigures the stochastic KD periods. Expected parameters: window (int), kPeriod (int), dPeriod (int).
func (e *Engine) ConfigStochastic(params ...any) error {
	return e.stoch.Config(params...)
}

// Compute validates the series and produces one IndicatorBar per input bar,
// positionally aligned with the input. It fails with an error carrying
// errors.ErrCodeInvalidInput if the series is empty, a bar has non-finite or
// non-positive prices, or timestamps are not strictly increasing. There are
// no partial results: the call either returns the full augmented series or
// an error.
func (e *Engine) Compute(series []types.Bar) ([]types.IndicatorBar, error) {
	if err := types.ValidateSeries(series); err != nil {
		return nil, err
	}

	closes := make([]float64, len(series))
	for i, bar := range series {
		closes[i] = bar.Close
	}

	macd := e.macd.Compute(closes)
	stoch := e.stoch.Compute(series)

	out := make([]types.IndicatorBar, len(series))
	for i, bar := range series {
		out[i] = types.IndicatorBar{
			Bar:    bar,
			MACD:   macd.MACD[i],
			Signal: macd.Signal[i],
			Hist:   macd.Hist[i],
			RSV:    stoch.RSV[i],
			K:      stoch.K[i],
			D:      stoch.D[i],
		}
	}

	return out, nil
}
