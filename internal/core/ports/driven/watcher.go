package driven

import "context"

// ConfigWatcher notifies about changes to a single file.
type ConfigWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each
	// write to path. Callbacks run one at a time on the watching goroutine.
	// An error returned by onChange is reported but does not stop watching.
	Watch(ctx context.Context, path string, onChange func() error) error
}
