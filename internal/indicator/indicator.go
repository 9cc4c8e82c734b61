// Package indicator computes technical indicators over ordered daily bar
// series. Every indicator here recomputes the whole series on each call:
// the recursions are seeded at index 0 and every value depends on the full
// prior history, so there is no incremental update path. Series are bounded
// at a few hundred daily bars, which keeps full recomputation cheap.
package indicator

import (
	"github.com/twquant/warroom/internal/types"
)

// Indicator is implemented by every technical indicator in this package.
type Indicator interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Config configures the indicator periods. Each implementation documents
	// its expected parameters.
	Config(params ...any) error
}
