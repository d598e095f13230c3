package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure PipelineService implements the interfaces.
var (
	_ driving.PipelineService = (*PipelineService)(nil)
	_ driving.RunHistory      = (*PipelineService)(nil)
)

// PipelineService runs harness stages in order and records each run.
// Stages run sequentially; any failure aborts the run.
type PipelineService struct {
	writer  driven.GeometryWriter
	runner  driven.ToolRunner
	plotter driven.ContourPlotter
	source  driven.FieldSource
	runs    driven.RunStore

	now   func() time.Time
	newID func() string
}

// NewPipelineService creates a new pipeline service.
// plotter, source and runs are optional; a nil runs store disables run history.
func NewPipelineService(
	writer driven.GeometryWriter,
	runner driven.ToolRunner,
	plotter driven.ContourPlotter,
	source driven.FieldSource,
	runs driven.RunStore,
) *PipelineService {
	return &PipelineService{
		writer:  writer,
		runner:  runner,
		plotter: plotter,
		source:  source,
		runs:    runs,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Build creates the output directory, writes the geometry and meshes it.
func (p *PipelineService) Build(ctx context.Context, settings domain.AppSettings) (*domain.Run, error) {
	run := p.start(domain.RunKindBuild, settings)

	err := p.build(ctx, settings, run)
	p.finish(ctx, run, err)
	return run, err
}

func (p *PipelineService) build(ctx context.Context, settings domain.AppSettings, run *domain.Run) error {
	if err := ensureDir(settings.Output.Dir); err != nil {
		return err
	}

	geoPath := settings.Output.GeometryPath()
	if _, err := NewGeometryService(p.writer).Generate(settings.Device, geoPath); err != nil {
		return err
	}
	run.Artifacts[domain.ArtifactGeometry] = geoPath

	artifact, err := NewMeshService(p.runner, settings.Mesher.Command).Build(ctx, geoPath, settings.Output.MeshPath())
	if err != nil {
		return err
	}
	run.Artifacts[domain.ArtifactMesh] = artifact.MeshPath
	return nil
}

// Simulate instantiates the simulator deck against the current mesh and runs the simulator.
func (p *PipelineService) Simulate(ctx context.Context, settings domain.AppSettings, gateVoltage float64) (*domain.Run, error) {
	run := p.start(domain.RunKindSimulate, settings)

	err := ensureDir(settings.Output.Dir)
	if err == nil {
		var result *domain.SimulationResult
		result, err = NewSimulationService(p.runner, settings.Simulator.Command).Run(ctx, domain.SimulationRequest{
			GateVoltage:  gateVoltage,
			TemplatePath: settings.Simulator.Template,
			DeckPath:     settings.Output.DeckPath(),
			MeshPath:     settings.Output.MeshPath(),
		})
		if result != nil {
			run.Artifacts[domain.ArtifactDeck] = result.DeckPath
		}
	}

	p.finish(ctx, run, err)
	return run, err
}

// Plot renders the potential map from the field source.
func (p *PipelineService) Plot(ctx context.Context, settings domain.AppSettings, gateVoltage float64) (*domain.Run, error) {
	run := p.start(domain.RunKindPlot, settings)

	err := ensureDir(settings.Output.Dir)
	if err == nil && p.plotter == nil {
		err = fmt.Errorf("plotter: %w", domain.ErrNotImplemented)
	}
	if err == nil {
		path := settings.Output.PlotPath()
		err = NewPlotService(p.plotter, p.source, settings.Plot.Levels).PlotFromSource(ctx, gateVoltage, path)
		if err == nil {
			run.Artifacts[domain.ArtifactPlot] = path
		}
	}

	p.finish(ctx, run, err)
	return run, err
}

// List returns recent runs, most recent first.
func (p *PipelineService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if p.runs == nil {
		return nil, nil
	}
	return p.runs.List(ctx, limit)
}

// Get retrieves a run by ID.
func (p *PipelineService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if p.runs == nil {
		return nil, domain.ErrNotFound
	}
	return p.runs.Get(ctx, id)
}

func (p *PipelineService) start(kind domain.RunKind, settings domain.AppSettings) *domain.Run {
	run := &domain.Run{
		ID:         p.newID(),
		Kind:       kind,
		StartedAt:  p.now(),
		Parameters: settings.Device,
		Artifacts:  make(map[string]string),
	}
	logger.Debug("Run %s (%s) started", run.ID, kind)
	return run
}

// finish stamps the outcome and records the run. A store failure is
// logged and never replaces the run's own error. The run is saved even
// when ctx was cancelled mid-stage.
func (p *PipelineService) finish(ctx context.Context, run *domain.Run, err error) {
	run.EndedAt = p.now()
	run.Status = domain.RunStatusSucceeded
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = err.Error()
	}
	logger.Debug("Run %s %s in %s", run.ID, run.Status, run.Duration())

	if p.runs == nil {
		return
	}
	if saveErr := p.runs.Save(context.WithoutCancel(ctx), run); saveErr != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, saveErr)
	}
}

// ensureDir creates dir if absent. Creating an existing directory is not an error.
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
