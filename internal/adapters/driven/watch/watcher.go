// Package watch notifies about configuration file changes using fsnotify.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Verify interface compliance.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements driven.ConfigWatcher.
// The parent directory is watched so that files replaced by rename are still seen.
type Watcher struct {
	debounce time.Duration
}

// NewWatcher creates a watcher with the given debounce interval.
// A non-positive interval uses DefaultDebounce.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch blocks until ctx is cancelled, calling onChange after path is written.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func() error) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("Watching %s", target)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if relevant(event, target) {
				logger.Debug("Change detected: %s %s", event.Op, event.Name)
				fire = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				logger.Warn("Change handler failed: %v", err)
			}
		}
	}
}

// relevant reports whether event is a write or create of target.
func relevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
