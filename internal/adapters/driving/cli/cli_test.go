package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/preset"
	"github.com/custodia-labs/finfet-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/services"
)

// mockPipeline records the settings each stage was called with.
type mockPipeline struct {
	settings domain.AppSettings
	voltage  float64
	calls    []domain.RunKind
	err      error
}

func (m *mockPipeline) record(kind domain.RunKind, settings domain.AppSettings, vg float64) (*domain.Run, error) {
	m.calls = append(m.calls, kind)
	m.settings, m.voltage = settings, vg

	run := &domain.Run{
		ID:         "run-1",
		Kind:       kind,
		Status:     domain.RunStatusSucceeded,
		StartedAt:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:    time.Date(2026, 1, 1, 12, 0, 1, 0, time.UTC),
		Parameters: settings.Device,
		Artifacts:  map[string]string{},
	}
	if m.err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = m.err.Error()
	}
	switch kind {
	case domain.RunKindBuild:
		run.Artifacts[domain.ArtifactGeometry] = settings.Output.GeometryPath()
		run.Artifacts[domain.ArtifactMesh] = settings.Output.MeshPath()
	case domain.RunKindSimulate:
		run.Artifacts[domain.ArtifactDeck] = settings.Output.DeckPath()
	case domain.RunKindPlot:
		run.Artifacts[domain.ArtifactPlot] = settings.Output.PlotPath()
	}
	return run, m.err
}

func (m *mockPipeline) Build(_ context.Context, s domain.AppSettings) (*domain.Run, error) {
	return m.record(domain.RunKindBuild, s, 0)
}

func (m *mockPipeline) Simulate(_ context.Context, s domain.AppSettings, vg float64) (*domain.Run, error) {
	return m.record(domain.RunKindSimulate, s, vg)
}

func (m *mockPipeline) Plot(_ context.Context, s domain.AppSettings, vg float64) (*domain.Run, error) {
	return m.record(domain.RunKindPlot, s, vg)
}

// mockMeshService records the requested paths.
type mockMeshService struct {
	geo, msh string
	err      error
}

func (m *mockMeshService) Build(_ context.Context, geo, msh string) (*domain.MeshArtifact, error) {
	m.geo, m.msh = geo, msh
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MeshArtifact{GeometryPath: geo, MeshPath: msh, Dimension: 2, Format: "msh2"}, nil
}

// mockGeometryService records the requested path.
type mockGeometryService struct {
	params domain.DeviceParameters
	path   string
}

func (m *mockGeometryService) Describe(p domain.DeviceParameters) (*domain.GeometryDescription, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return domain.NewFinFETGeometry(p), nil
}

func (m *mockGeometryService) Generate(p domain.DeviceParameters, path string) (*domain.GeometryDescription, error) {
	m.params, m.path = p, path
	return m.Describe(p)
}

// mockRunHistory serves a fixed list of runs.
type mockRunHistory struct {
	runs  []domain.Run
	limit int
}

func (m *mockRunHistory) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.limit = limit
	return m.runs, nil
}

func (m *mockRunHistory) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockWatchService reports one successful and one failed build.
type mockWatchService struct{}

func (m *mockWatchService) Watch(_ context.Context, notify func(*domain.Run, error)) error {
	notify(&domain.Run{ID: "w-1", Kind: domain.RunKindBuild, Status: domain.RunStatusSucceeded}, nil)
	notify(nil, errors.New("config unreadable"))
	return nil
}

type cliFixture struct {
	config   *memory.ConfigStore
	pipeline *mockPipeline
	mesh     *mockMeshService
	geometry *mockGeometryService
	runs     *mockRunHistory
}

// setupCLITest injects mock services and restores globals afterwards.
func setupCLITest(t *testing.T) *cliFixture {
	t.Helper()

	f := &cliFixture{
		config:   memory.NewConfigStore(),
		pipeline: &mockPipeline{},
		mesh:     &mockMeshService{},
		geometry: &mockGeometryService{},
		runs:     &mockRunHistory{},
	}
	_ = f.config.Set("output.dir", t.TempDir())

	oldBootstrap := bootstrap
	bootstrap = nil
	SetServices(&Services{
		Settings: services.NewSettingsService(f.config).WithPresetLoader(preset.NewLoader()),
		Geometry: f.geometry,
		Mesh:     f.mesh,
		Pipeline: f.pipeline,
		Runs:     f.runs,
		Watch:    &mockWatchService{},
	})

	t.Cleanup(func() {
		SetServices(nil)
		bootstrap = oldBootstrap
		resetFlags(rootCmd)
	})
	return f
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func requireNoServices(t *testing.T) {
	t.Helper()
	oldBootstrap := bootstrap
	bootstrap = nil
	SetServices(nil)
	t.Cleanup(func() {
		bootstrap = oldBootstrap
		resetFlags(rootCmd)
	})
	require.Nil(t, pipelineService)
}
