package services

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService reloads settings and rebuilds on configuration changes.
type WatchService struct {
	watcher  driven.ConfigWatcher
	settings driving.SettingsService
	pipeline driving.PipelineService
}

// NewWatchService creates a new watch service.
func NewWatchService(
	watcher driven.ConfigWatcher,
	settings driving.SettingsService,
	pipeline driving.PipelineService,
) *WatchService {
	return &WatchService{
		watcher:  watcher,
		settings: settings,
		pipeline: pipeline,
	}
}

// Watch runs a build now and after every configuration change.
func (s *WatchService) Watch(ctx context.Context, notify func(run *domain.Run, err error)) error {
	if notify == nil {
		notify = func(*domain.Run, error) {}
	}

	rebuild := func() error {
		if err := s.settings.Reload(); err != nil {
			notify(nil, err)
			return err
		}
		settings, err := s.settings.Get()
		if err != nil {
			notify(nil, err)
			return err
		}
		run, err := s.pipeline.Build(ctx, *settings)
		notify(run, err)
		return err
	}

	if err := rebuild(); err != nil {
		logger.Warn("Initial build failed: %v", err)
	}

	logger.Info("Watching %s for changes", s.settings.Path())
	return s.watcher.Watch(ctx, s.settings.Path(), rebuild)
}
