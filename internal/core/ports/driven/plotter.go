package driven

import "github.com/custodia-labs/finfet-cli/internal/core/domain"

// ContourPlotter renders a scattered scalar field as a filled contour image.
type ContourPlotter interface {
	// Plot renders field to path, overwriting any existing file.
	Plot(field *domain.ScalarField, opts domain.PlotOptions, path string) error
}

// FieldSource supplies result data for visualisation.
type FieldSource interface {
	// Load returns the scalar field to plot.
	Load() (*domain.ScalarField, error)
}
