package indicator

import (
	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
//
// The EMAs are recursive over the full history and seeded at the first
// sample (not a simple-average seed): ema[0] = close[0], then
// ema[i] = alpha*close[i] + (1-alpha)*ema[i-1] with alpha = 2/(period+1).
// This matches a pandas ewm(span=period, adjust=False) pass and means a
// truncated series produces different values than a full one.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() *MACD {
	return &MACD{
		fastPeriod:   12, // Default fast period
		slowPeriod:   26, // Default slow period
		signalPeriod: 9,  // Default signal period
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	fastPeriod, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for fastPeriod parameter, expected int")
	}

	if fastPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod must be a positive integer, got %d", fastPeriod)
	}

	slowPeriod, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for slowPeriod parameter, expected int")
	}

	if slowPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "slowPeriod must be a positive integer, got %d", slowPeriod)
	}

	signalPeriod, ok := params[2].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for signalPeriod parameter, expected int")
	}

	if signalPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "signalPeriod must be a positive integer, got %d", signalPeriod)
	}

	m.fastPeriod = fastPeriod
	m.slowPeriod = slowPeriod
	m.signalPeriod = signalPeriod

	return nil
}

// MACDResult holds the three MACD series, positionally aligned with the input closes.
type MACDResult struct {
	MACD   []float64
	Signal []float64
	Hist   []float64
}

// Compute calculates the MACD line, signal line and histogram over the whole
// close-price sequence. The caller is responsible for input validation; an
// empty input yields empty output.
func (m *MACD) Compute(closes []float64) MACDResult {
	n := len(closes)
	result := MACDResult{
		MACD:   make([]float64, n),
		Signal: make([]float64, n),
		Hist:   make([]float64, n),
	}

	if n == 0 {
		return result
	}

	alphaFast := 2.0 / float64(m.fastPeriod+1)
	alphaSlow := 2.0 / float64(m.slowPeriod+1)
	alphaSignal := 2.0 / float64(m.signalPeriod+1)

	emaFast := closes[0]
	emaSlow := closes[0]

	result.MACD[0] = emaFast - emaSlow
	result.Signal[0] = result.MACD[0]
	result.Hist[0] = 0

	for i := 1; i < n; i++ {
		emaFast = alphaFast*closes[i] + (1-alphaFast)*emaFast
		emaSlow = alphaSlow*closes[i] + (1-alphaSlow)*emaSlow

		macd := emaFast - emaSlow
		signal := alphaSignal*macd + (1-alphaSignal)*result.Signal[i-1]

		result.MACD[i] = macd
		result.Signal[i] = signal
		result.Hist[i] = macd - signal
	}

	return result
}
