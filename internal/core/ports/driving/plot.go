package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// PlotService renders result data.
type PlotService interface {
	// PlotPotential renders field as an electrostatic potential map at path.
	PlotPotential(ctx context.Context, field *domain.ScalarField, gateVoltage float64, path string) error

	// PlotFromSource loads the field from the configured source and renders it.
	PlotFromSource(ctx context.Context, gateVoltage float64, path string) error
}
