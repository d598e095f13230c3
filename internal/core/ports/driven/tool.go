package driven

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// ToolRunner runs external executables as blocking subprocesses.
type ToolRunner interface {
	// Run starts the tool and waits for it to exit.
	// A tool that cannot be started yields a *domain.ToolError matching
	// domain.ErrToolNotFound; a non-zero exit yields one matching
	// domain.ErrToolFailed. No retry and no timeout are applied.
	Run(ctx context.Context, inv domain.ToolInvocation) error
}
