package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// WatchService rebuilds the device whenever the configuration file changes.
type WatchService interface {
	// Watch runs one build immediately, then one per configuration change,
	// until ctx is cancelled. notify receives the outcome of every build.
	// A failed build is reported and does not stop watching.
	Watch(ctx context.Context, notify func(run *domain.Run, err error)) error
}
