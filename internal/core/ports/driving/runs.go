package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// RunHistory exposes recorded runs.
type RunHistory interface {
	// List returns recent runs, most recent first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
