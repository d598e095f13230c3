package domain

import (
	"fmt"
	"math"
)

// DefaultPlotLevels is the number of contour levels when none is configured.
const DefaultPlotLevels = 20

// ScalarField is a scalar quantity sampled at scattered 2D positions.
type ScalarField struct {
	X      []float64
	Y      []float64
	Values []float64
}

// Len returns the number of samples.
func (f *ScalarField) Len() int {
	return len(f.Values)
}

// Validate checks the three sequences are non-empty and of equal length.
func (f *ScalarField) Validate() error {
	if f == nil || len(f.Values) == 0 {
		return fmt.Errorf("%w: scalar field has no samples", ErrInvalidInput)
	}
	if len(f.X) != len(f.Values) || len(f.Y) != len(f.Values) {
		return fmt.Errorf("%w: scalar field lengths differ (x=%d, y=%d, values=%d)",
			ErrInvalidInput, len(f.X), len(f.Y), len(f.Values))
	}
	return nil
}

// Range returns the minimum and maximum sample values.
func (f *ScalarField) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// PlotOptions controls how a scalar field is rendered.
type PlotOptions struct {
	// GateVoltage is used for labelling only.
	GateVoltage float64

	// Levels is the number of contour levels.
	Levels int

	Title      string
	ColorLabel string
	XLabel     string
	YLabel     string
}

// PotentialPlotOptions returns the labelling used for electrostatic potential plots.
func PotentialPlotOptions(gateVoltage float64, levels int) PlotOptions {
	if levels <= 0 {
		levels = DefaultPlotLevels
	}
	return PlotOptions{
		GateVoltage: gateVoltage,
		Levels:      levels,
		Title:       fmt.Sprintf("FINFET Electrostatic Potential (Vg = %v V)", gateVoltage),
		ColorLabel:  "Potential (V)",
		XLabel:      "Position (m)",
		YLabel:      "Position (m)",
	}
}
