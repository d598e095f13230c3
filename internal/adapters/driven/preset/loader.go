// Package preset loads device presets from YAML files.
//
// A preset file looks like:
//
//	name: 14nm
//	description: Short-channel variant
//	device:
//	  gate_length: 14e-9
//	  fin_height: 42e-9
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.PresetLoader = (*Loader)(nil)

// presetFile is the on-disk form of a preset.
type presetFile struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Device      map[string]float64 `yaml:"device"`
}

// Loader implements driven.PresetLoader for YAML files.
type Loader struct{}

// NewLoader creates a YAML preset loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the preset at path.
func (l *Loader) Load(path string) (*domain.DevicePreset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var f presetFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: preset %s: %w", domain.ErrInvalidInput, path, err)
	}
	if len(f.Device) == 0 {
		return nil, fmt.Errorf("%w: preset %s has no device section", domain.ErrInvalidInput, path)
	}

	return &domain.DevicePreset{
		Name:        f.Name,
		Description: f.Description,
		Values:      f.Device,
	}, nil
}
