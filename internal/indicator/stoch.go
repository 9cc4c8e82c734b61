package indicator

import (
	"github.com/twquant/warroom/internal/types"
	"github.com/twquant/warroom/pkg/errors"
)

// neutralValue is used both as the fixed K/D seed at index 0 and as the RSV
// fallback when a trailing window has zero range (high == low throughout).
// Keeping the recursion well-defined at every index is preferred over
// propagating an "undefined" marker.
const neutralValue = 50.0

// StochasticKD represents the stochastic oscillator with recursive K and D
// smoothing (the 9,3,3 "slow KD" variant common on Taiwanese market charts,
// not the textbook simple-moving-average smoothing).
//
// RSV uses a trailing window that shrinks at the start of the series: for
// index i the window is [max(0, i-window+1), i]. K and D are seeded at 50
// for index 0 regardless of the first RSV, then smoothed recursively:
//
//	K[i] = (kPeriod-1)/kPeriod * K[i-1] + 1/kPeriod * RSV[i]
//	D[i] = (dPeriod-1)/dPeriod * D[i-1] + 1/dPeriod * K[i]
//
// With the default periods this is the familiar 2/3 + 1/3 recursion. The
// state runs across the entire series from index 0, so recomputation always
// starts from the seed, never from a mid-series checkpoint.
type StochasticKD struct {
	window  int
	kPeriod int
	dPeriod int
}

// NewStochasticKD creates a new stochastic KD indicator with default configuration.
func NewStochasticKD() *StochasticKD {
	return &StochasticKD{
		window:  9, // Default RSV window
		kPeriod: 3, // Default K smoothing period
		dPeriod: 3, // Default D smoothing period
	}
}

// Name returns the name of the indicator.
func (s *StochasticKD) Name() types.IndicatorType {
	return types.IndicatorTypeStochasticKD
}

// Config configures the stochastic KD indicator. Expected parameters: window (int), kPeriod (int), dPeriod (int).
func (s *StochasticKD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 3 parameters: window (int), kPeriod (int), dPeriod (int)")
	}

	window, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for window parameter, expected int")
	}

	if window <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "window must be a positive integer, got %d", window)
	}

	kPeriod, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for kPeriod parameter, expected int")
	}

	if kPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "kPeriod must be a positive integer, got %d", kPeriod)
	}

	dPeriod, ok := params[2].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for dPeriod parameter, expected int")
	}

	if dPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "dPeriod must be a positive integer, got %d", dPeriod)
	}

	s.window = window
	s.kPeriod = kPeriod
	s.dPeriod = dPeriod

	return nil
}

// StochasticResult holds the RSV, K and D series, positionally aligned with the input bars.
type StochasticResult struct {
	RSV []float64
	K   []float64
	D   []float64
}

// Compute calculates RSV, K and D over the whole bar sequence. The caller is
// responsible for input validation; an empty input yields empty output.
func (s *StochasticKD) Compute(bars []types.Bar) StochasticResult {
	n := len(bars)
	result := StochasticResult{
		RSV: make([]float64, n),
		K:   make([]float64, n),
		D:   make([]float64, n),
	}

	if n == 0 {
		return result
	}

	kCarry := (float64(s.kPeriod) - 1) / float64(s.kPeriod)
	kBlend := 1 / float64(s.kPeriod)
	dCarry := (float64(s.dPeriod) - 1) / float64(s.dPeriod)
	dBlend := 1 / float64(s.dPeriod)

	for i := 0; i < n; i++ {
		result.RSV[i] = s.rawStochasticValue(bars, i)

		if i == 0 {
			// Fixed seed, independent of the first bar's RSV.
			result.K[0] = neutralValue
			result.D[0] = neutralValue

			continue
		}

		result.K[i] = kCarry*result.K[i-1] + kBlend*result.RSV[i]
		result.D[i] = dCarry*result.D[i-1] + dBlend*result.K[i]
	}

	return result
}

// rawStochasticValue computes RSV at index i over the trailing window,
// which shrinks at the start of the series.
func (s *StochasticKD) rawStochasticValue(bars []types.Bar, i int) float64 {
	start := i - s.window + 1
	if start < 0 {
		start = 0
	}

	lowMin := bars[start].Low
	highMax := bars[start].High

	for j := start + 1; j <= i; j++ {
		if bars[j].Low < lowMin {
			lowMin = bars[j].Low
		}

		if bars[j].High > highMax {
			highMax = bars[j].High
		}
	}

	if highMax == lowMin {
		// Zero-range window: division would be undefined.
		return neutralValue
	}

	return (bars[i].Close - lowMin) / (highMax - lowMin) * 100
}
