package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// SimulationService instantiates a simulator deck and runs the external simulator.
type SimulationService interface {
	// Run substitutes placeholders in the template, writes the deck and
	// invokes the simulator on it. Errors match domain.ErrToolNotFound,
	// domain.ErrSimulationFailed or domain.ErrInvalidInput.
	Run(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error)
}
