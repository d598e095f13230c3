package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

func TestParamsCmd_Show(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "params", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "[Device]")
	assert.Contains(t, out, "gate_length:")
	assert.Contains(t, out, "2e-08 (20 nm)")
	assert.Contains(t, out, "Command: gmsh")
	assert.Contains(t, out, "Levels: 20")
}

func TestParamsCmd_DefaultsToShow(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "params")

	require.NoError(t, err)
	assert.Contains(t, out, "[Device]")
}

func TestParamsCmd_Set(t *testing.T) {
	f := setupCLITest(t)

	out, err := execute(t, "params", "set", "fin_height", "4.2e-8")

	require.NoError(t, err)
	assert.Contains(t, out, "fin_height = 4.2e-08 (42 nm)")
	assert.Equal(t, 4.2e-8, f.config.GetFloat("device.fin_height"))
}

func TestParamsCmd_Set_NotANumber(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "params", "set", "fin_height", "tall")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParamsCmd_Set_UnknownName(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "params", "set", "fin_depth", "1e-9")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParamsCmd_Set_NegativeValue(t *testing.T) {
	f := setupCLITest(t)

	_, err := execute(t, "params", "set", "--", "gate_length", "-1e-9")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := f.config.Get("device.gate_length")
	assert.False(t, ok)
}

func TestParamsCmd_Set_RequiresTwoArgs(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "params", "set", "gate_length")

	assert.Error(t, err)
}

func TestParamsCmd_Reset(t *testing.T) {
	f := setupCLITest(t)
	_ = f.config.Set("device.gate_length", 14e-9)

	out, err := execute(t, "params", "reset")

	require.NoError(t, err)
	assert.Contains(t, out, "reset to defaults")
	_, ok := f.config.Get("device.gate_length")
	assert.False(t, ok)
}

func TestFormatMeters(t *testing.T) {
	assert.Equal(t, "1e-09 (1 nm)", formatMeters(1e-9))
	assert.Equal(t, "3e-08 (30 nm)", formatMeters(30e-9))
}

func TestParamsCmd_Load(t *testing.T) {
	f := setupCLITest(t)
	path := filepath.Join(t.TempDir(), "14nm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: 14nm\ndevice:\n  gate_length: 14e-9\n  fin_height: 42e-9\n"), 0644))

	out, err := execute(t, "params", "load", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Applied preset 14nm")
	assert.Contains(t, out, "gate_length = 1.4e-08 (14 nm)")
	assert.Equal(t, 14e-9, f.config.GetFloat("device.gate_length"))
	assert.Equal(t, 42e-9, f.config.GetFloat("device.fin_height"))
}

func TestParamsCmd_Load_InvalidPreset(t *testing.T) {
	f := setupCLITest(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device:\n  oxide_thickness: -1e-9\n"), 0644))

	_, err := execute(t, "params", "load", path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := f.config.Get("device.oxide_thickness")
	assert.False(t, ok)
}

func TestParamsCmd_Load_MissingFile(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "params", "load", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
