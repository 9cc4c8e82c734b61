package mocks

import (
	"testing"
	"time"

	"github.com/twquant/warroom/internal/types"
)

func TestBarGenerator_Generate(t *testing.T) {
	gen := NewBarGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 90

	bars := gen.Generate(config)

	if len(bars) != 90 {
		t.Errorf("expected 90 bars, got %d", len(bars))
	}

	// Verify bars are in chronological order
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			t.Errorf("bars not in chronological order at index %d", i)
		}
	}

	// Verify symbol is set correctly
	for i, b := range bars {
		if b.Symbol != config.Symbol {
			t.Errorf("expected symbol %s at index %d, got %s", config.Symbol, i, b.Symbol)
		}
	}

	// Verify OHLC values are positive
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			t.Errorf("invalid OHLC values at index %d: O=%f H=%f L=%f C=%f",
				i, b.Open, b.High, b.Low, b.Close)
		}
	}

	// Verify High >= Low
	for i, b := range bars {
		if b.High < b.Low {
			t.Errorf("High < Low at index %d: H=%f L=%f", i, b.High, b.Low)
		}
	}

	// Verify weekends are skipped
	for i, b := range bars {
		if b.Time.Weekday() == time.Saturday || b.Time.Weekday() == time.Sunday {
			t.Errorf("bar at index %d falls on a weekend: %v", i, b.Time)
		}
	}
}

func TestBarGenerator_Reproducibility(t *testing.T) {
	// Same seed should produce same results
	gen1 := NewBarGenerator(42)
	gen2 := NewBarGenerator(42)

	config := DefaultConfig()
	config.Count = 10

	bars1 := gen1.Generate(config)
	bars2 := gen2.Generate(config)

	for i := range bars1 {
		if bars1[i].Close != bars2[i].Close {
			t.Errorf("bars not reproducible at index %d: got %f and %f",
				i, bars1[i].Close, bars2[i].Close)
		}
	}
}

func TestBarGenerator_DifferentSeeds(t *testing.T) {
	gen1 := NewBarGenerator(42)
	gen2 := NewBarGenerator(123)

	config := DefaultConfig()
	config.Count = 10

	bars1 := gen1.Generate(config)
	bars2 := gen2.Generate(config)

	same := true

	for i := range bars1 {
		if bars1[i].Close != bars2[i].Close {
			same = false

			break
		}
	}

	if same {
		t.Error("different seeds produced identical series")
	}
}

func TestBarGenerator_ValidSeries(t *testing.T) {
	// Generated series must satisfy the engine's preconditions.
	bars := GenerateQuarter("^TWII")

	if err := types.ValidateSeries(bars); err != nil {
		t.Errorf("generated series failed validation: %v", err)
	}
}
