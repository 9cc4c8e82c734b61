package types

type IndicatorType string

const (
	IndicatorTypeMACD         IndicatorType = "macd"
	IndicatorTypeStochasticKD IndicatorType = "stochastic_kd"
)

// IndicatorBar is a Bar augmented with the derived indicator fields,
// positionally aligned with the input series (same timestamp, same index).
// Computed in one pass from a series and never mutated afterward.
type IndicatorBar struct {
	Bar

	// MACD(12,26,9) fields.
	MACD   float64 `json:"macd"`
	Signal float64 `json:"signal"`
	Hist   float64 `json:"hist"`

	// Stochastic KD(9,3,3) fields. RSV is the raw stochastic value before
	// smoothing; a zero-range window yields the neutral value 50.
	RSV float64 `json:"rsv"`
	K   float64 `json:"k"`
	D   float64 `json:"d"`
}
