package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

const testDeckTemplate = `# FinFET deck
IMPORT Mesh="{{mesh_file}}"
ATTACH Electrode=gate_contact VConst={{gate_voltage}}
`

func simulationRequest(t *testing.T, template string) domain.SimulationRequest {
	t.Helper()
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "finfet.pdr")
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0600))

	return domain.SimulationRequest{
		GateVoltage:  0.5,
		TemplatePath: templatePath,
		DeckPath:     filepath.Join(dir, "output", "finfet_run.pdr"),
		MeshPath:     "output/finfet.msh",
	}
}

func TestSimulationService_Run(t *testing.T) {
	runner := newMockToolRunner()
	service := NewSimulationService(runner, "")
	req := simulationRequest(t, testDeckTemplate)

	result, err := service.Run(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req.DeckPath, result.DeckPath)
	assert.Equal(t, 0.5, result.GateVoltage)

	deck, err := os.ReadFile(req.DeckPath)
	require.NoError(t, err)
	assert.Contains(t, string(deck), `IMPORT Mesh="output/finfet.msh"`)
	assert.Contains(t, string(deck), "VConst=0.5\n")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "gss", runner.calls[0].Name)
	assert.Equal(t, []string{req.DeckPath}, runner.calls[0].Args)
}

func TestSimulationService_Run_Failed(t *testing.T) {
	runner := newMockToolRunner()
	runner.failWith("gss", 2)
	service := NewSimulationService(runner, "gss")

	result, err := service.Run(context.Background(), simulationRequest(t, testDeckTemplate))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSimulationFailed)
	code, _ := domain.ExitCodeOf(err)
	assert.Equal(t, 2, code)
}

func TestSimulationService_Run_ToolMissing(t *testing.T) {
	runner := newMockToolRunner()
	runner.missing("gss")
	service := NewSimulationService(runner, "gss")

	_, err := service.Run(context.Background(), simulationRequest(t, testDeckTemplate))

	assert.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.NotErrorIs(t, err, domain.ErrSimulationFailed)
}

func TestSimulationService_Run_BadTemplate(t *testing.T) {
	runner := newMockToolRunner()
	service := NewSimulationService(runner, "gss")
	req := simulationRequest(t, "VConst={{drain_voltage}}")

	_, err := service.Run(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.calls)
	assert.NoFileExists(t, req.DeckPath)
}

func TestSimulationService_Run_MissingTemplate(t *testing.T) {
	runner := newMockToolRunner()
	service := NewSimulationService(runner, "gss")
	req := simulationRequest(t, testDeckTemplate)
	req.TemplatePath = filepath.Join(t.TempDir(), "nope.pdr")

	_, err := service.Run(context.Background(), req)

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, runner.calls)
}

func TestSimulationService_InstantiateDeck_Overwrites(t *testing.T) {
	service := NewSimulationService(newMockToolRunner(), "gss")
	req := simulationRequest(t, testDeckTemplate)

	require.NoError(t, service.InstantiateDeck(req))
	req.GateVoltage = 1.25
	require.NoError(t, service.InstantiateDeck(req))

	deck, err := os.ReadFile(req.DeckPath)
	require.NoError(t, err)
	assert.Contains(t, string(deck), "VConst=1.25\n")
	assert.NotContains(t, string(deck), "VConst=0.5")
}
