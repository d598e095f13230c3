// Package main is the entry point for the finfet CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/exec"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/field/synthetic"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/gmsh"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/plot/gonum"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/preset"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/finfet-cli/internal/core/services"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

// bootstrap wires adapters into services once global flags are known.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore).WithPresetLoader(preset.NewLoader())

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	logger.Debug("Run history: %s", store.Path())

	writer := gmsh.NewWriter()
	runner := exec.NewRunner()
	source := synthetic.NewSource(settings.Plot.Samples, int64(settings.Plot.Seed))

	pipeline := services.NewPipelineService(writer, runner, gonum.NewPlotter(), source, store.RunStore())

	return &cli.Services{
		Settings: settingsService,
		Geometry: services.NewGeometryService(writer),
		Mesh:     services.NewMeshService(runner, settings.Mesher.Command),
		Pipeline: pipeline,
		Runs:     pipeline,
		Watch:    services.NewWatchService(watch.NewWatcher(0), settingsService, pipeline),
		Close:    store.Close,
	}, nil
}
