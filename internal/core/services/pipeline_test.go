package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

type pipelineFixture struct {
	service *PipelineService
	writer  *mockGeometryWriter
	runner  *mockToolRunner
	plotter *mockContourPlotter
	runs    *memory.RunStore
}

func newPipelineFixture() *pipelineFixture {
	f := &pipelineFixture{
		writer:  newMockGeometryWriter(),
		runner:  newMockToolRunner(),
		plotter: &mockContourPlotter{},
		runs:    memory.NewRunStore(),
	}
	f.service = NewPipelineService(f.writer, f.runner, f.plotter, &mockFieldSource{field: testField()}, f.runs)

	ids := 0
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.service.newID = func() string {
		ids++
		return fmt.Sprintf("run-%d", ids)
	}
	f.service.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return f
}

func testSettings(t *testing.T) domain.AppSettings {
	t.Helper()
	settings := domain.DefaultAppSettings()
	settings.Output.Dir = filepath.Join(t.TempDir(), "output")
	return settings
}

func TestPipelineService_Build(t *testing.T) {
	f := newPipelineFixture()
	settings := testSettings(t)

	run, err := f.service.Build(context.Background(), settings)

	require.NoError(t, err)
	assert.DirExists(t, settings.Output.Dir)
	assert.Equal(t, domain.RunKindBuild, run.Kind)
	assert.Equal(t, domain.RunStatusSucceeded, run.Status)
	assert.Equal(t, time.Second, run.Duration())
	assert.Equal(t, settings.Output.GeometryPath(), run.Artifacts[domain.ArtifactGeometry])
	assert.Equal(t, settings.Output.MeshPath(), run.Artifacts[domain.ArtifactMesh])

	assert.Contains(t, f.writer.written, settings.Output.GeometryPath())
	require.Len(t, f.runner.calls, 1)
	assert.Equal(t, MeshArgs(settings.Output.GeometryPath(), settings.Output.MeshPath()), f.runner.calls[0].Args)

	stored, err := f.runs.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusSucceeded, stored.Status)
}

func TestPipelineService_Build_ExistingOutputDir(t *testing.T) {
	f := newPipelineFixture()
	settings := testSettings(t)
	require.NoError(t, os.MkdirAll(settings.Output.Dir, 0755))

	_, err := f.service.Build(context.Background(), settings)
	require.NoError(t, err)
}

func TestPipelineService_Build_MesherMissing(t *testing.T) {
	f := newPipelineFixture()
	f.runner.missing("gmsh")
	settings := testSettings(t)

	run, err := f.service.Build(context.Background(), settings)

	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
	assert.Contains(t, run.Error, "gmsh")
	assert.Contains(t, run.Artifacts, domain.ArtifactGeometry)
	assert.NotContains(t, run.Artifacts, domain.ArtifactMesh)

	stored, err := f.runs.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusFailed, stored.Status)
}

func TestPipelineService_Build_InvalidParametersAbortBeforeMesh(t *testing.T) {
	f := newPipelineFixture()
	settings := testSettings(t)
	settings.Device.GateLength = 0

	run, err := f.service.Build(context.Background(), settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
	assert.Empty(t, f.runner.calls)
	assert.Empty(t, f.writer.written)
}

func TestPipelineService_Simulate(t *testing.T) {
	f := newPipelineFixture()
	settings := testSettings(t)
	settings.Simulator.Template = filepath.Join(t.TempDir(), "finfet.pdr")
	require.NoError(t, os.WriteFile(settings.Simulator.Template, []byte(testDeckTemplate), 0600))

	run, err := f.service.Simulate(context.Background(), settings, 0.8)

	require.NoError(t, err)
	assert.Equal(t, domain.RunKindSimulate, run.Kind)
	assert.Equal(t, settings.Output.DeckPath(), run.Artifacts[domain.ArtifactDeck])

	deck, err := os.ReadFile(settings.Output.DeckPath())
	require.NoError(t, err)
	assert.Contains(t, string(deck), "VConst=0.8")
	assert.Contains(t, string(deck), settings.Output.MeshPath())
}

func TestPipelineService_Simulate_Failed(t *testing.T) {
	f := newPipelineFixture()
	f.runner.failWith("gss", 1)
	settings := testSettings(t)
	settings.Simulator.Template = filepath.Join(t.TempDir(), "finfet.pdr")
	require.NoError(t, os.WriteFile(settings.Simulator.Template, []byte(testDeckTemplate), 0600))

	run, err := f.service.Simulate(context.Background(), settings, 0.5)

	assert.ErrorIs(t, err, domain.ErrSimulationFailed)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
}

func TestPipelineService_Plot(t *testing.T) {
	f := newPipelineFixture()
	settings := testSettings(t)
	settings.Plot.Levels = 8

	run, err := f.service.Plot(context.Background(), settings, 0.5)

	require.NoError(t, err)
	assert.Equal(t, domain.RunKindPlot, run.Kind)
	assert.Equal(t, settings.Output.PlotPath(), run.Artifacts[domain.ArtifactPlot])
	assert.Equal(t, settings.Output.PlotPath(), f.plotter.path)
	assert.Equal(t, 8, f.plotter.opts.Levels)
}

func TestPipelineService_Plot_NoPlotter(t *testing.T) {
	service := NewPipelineService(newMockGeometryWriter(), newMockToolRunner(), nil, nil, nil)

	run, err := service.Plot(context.Background(), testSettings(t), 0.5)

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
}

func TestPipelineService_ListAndGet(t *testing.T) {
	f := newPipelineFixture()
	ctx := context.Background()
	settings := testSettings(t)

	first, err := f.service.Build(ctx, settings)
	require.NoError(t, err)
	second, err := f.service.Plot(ctx, settings, 0.5)
	require.NoError(t, err)

	runs, err := f.service.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)

	got, err := f.service.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunKindBuild, got.Kind)

	_, err = f.service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPipelineService_NoRunStore(t *testing.T) {
	service := NewPipelineService(newMockGeometryWriter(), newMockToolRunner(), nil, nil, nil)
	ctx := context.Background()

	run, err := service.Build(ctx, testSettings(t))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)

	runs, err := service.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = service.Get(ctx, run.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ctxRunStore rejects saves on a done context, as database-backed stores do.
type ctxRunStore struct {
	*memory.RunStore
}

func (s ctxRunStore) Save(ctx context.Context, run *domain.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.RunStore.Save(ctx, run)
}

func TestPipelineService_Build_CancelledStillRecorded(t *testing.T) {
	f := newPipelineFixture()
	store := ctxRunStore{memory.NewRunStore()}
	service := NewPipelineService(f.writer, f.runner, f.plotter, nil, store)
	f.runner.failWith("gmsh", -1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := service.Build(ctx, testSettings(t))

	require.ErrorIs(t, err, domain.ErrMeshGenerationFailed)
	stored, getErr := store.Get(context.Background(), run.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.RunStatusFailed, stored.Status)
	assert.NotEmpty(t, stored.Error)
}
