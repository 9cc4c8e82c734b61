package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/twquant/warroom/internal/types"
)

// Reference bands for the KD panel.
const (
	OverboughtBand = 80.0
	OversoldBand   = 20.0
)

// displayPlaces is the rounding applied to derived indicator values in the
// chart payload. Raw prices pass through untouched.
const displayPlaces = 4

// Chart is the render-surface payload: four positionally aligned panels
// sharing one time axis. Styling (colors, panel heights, theme) is the
// renderer's business; the payload only carries the up/down classification.
type Chart struct {
	Ticker  string        `json:"ticker"`
	Name    string        `json:"name"`
	Candles []CandlePoint `json:"candles"`
	Volume  []VolumePoint `json:"volume"`
	KD      KDPanel       `json:"kd"`
	MACD    []MACDPoint   `json:"macd"`
}

// CandlePoint is one candlestick.
type CandlePoint struct {
	Time  time.Time `json:"time"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// VolumePoint is one volume bar. Up reflects close versus open for the
// session, which drives the bar color.
type VolumePoint struct {
	Time   time.Time `json:"time"`
	Volume float64   `json:"volume"`
	Up     bool      `json:"up"`
}

// KDPanel carries the K and D lines plus the fixed reference bands.
type KDPanel struct {
	Points     []KDPoint `json:"points"`
	Overbought float64   `json:"overbought"`
	Oversold   float64   `json:"oversold"`
}

// KDPoint is one K/D sample.
type KDPoint struct {
	Time time.Time `json:"time"`
	K    float64   `json:"k"`
	D    float64   `json:"d"`
}

// MACDPoint is one MACD sample: histogram bar plus the two lines. Up
// reflects the histogram sign.
type MACDPoint struct {
	Time   time.Time `json:"time"`
	MACD   float64   `json:"macd"`
	Signal float64   `json:"signal"`
	Hist   float64   `json:"hist"`
	Up     bool      `json:"up"`
}

// BuildChart assembles the four-panel payload from an augmented series.
func BuildChart(ticker, name string, bars []types.IndicatorBar) Chart {
	chart := Chart{
		Ticker:  ticker,
		Name:    name,
		Candles: make([]CandlePoint, 0, len(bars)),
		Volume:  make([]VolumePoint, 0, len(bars)),
		KD: KDPanel{
			Points:     make([]KDPoint, 0, len(bars)),
			Overbought: OverboughtBand,
			Oversold:   OversoldBand,
		},
		MACD: make([]MACDPoint, 0, len(bars)),
	}

	for _, bar := range bars {
		chart.Candles = append(chart.Candles, CandlePoint{
			Time:  bar.Time,
			Open:  bar.Open,
			High:  bar.High,
			Low:   bar.Low,
			Close: bar.Close,
		})

		chart.Volume = append(chart.Volume, VolumePoint{
			Time:   bar.Time,
			Volume: bar.Volume,
			Up:     bar.Close >= bar.Open,
		})

		chart.KD.Points = append(chart.KD.Points, KDPoint{
			Time: bar.Time,
			K:    roundForDisplay(bar.K),
			D:    roundForDisplay(bar.D),
		})

		chart.MACD = append(chart.MACD, MACDPoint{
			Time:   bar.Time,
			MACD:   roundForDisplay(bar.MACD),
			Signal: roundForDisplay(bar.Signal),
			Hist:   roundForDisplay(bar.Hist),
			Up:     bar.Hist >= 0,
		})
	}

	return chart
}

func roundForDisplay(value float64) float64 {
	return decimal.NewFromFloat(value).Round(displayPlaces).InexactFloat64()
}
