package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// PipelineService orchestrates the geometry -> mesh stages.
type PipelineService interface {
	// Build creates the output directory, generates the geometry description
	// and meshes it. The run is recorded whether it succeeds or fails.
	Build(ctx context.Context, settings domain.AppSettings) (*domain.Run, error)

	// Simulate runs the device simulator on the current mesh and records the run.
	Simulate(ctx context.Context, settings domain.AppSettings, gateVoltage float64) (*domain.Run, error)

	// Plot renders the potential plot and records the run.
	Plot(ctx context.Context, settings domain.AppSettings, gateVoltage float64) (*domain.Run, error)
}
