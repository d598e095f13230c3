package driven

import "github.com/custodia-labs/finfet-cli/internal/core/domain"

// PresetLoader reads device presets from files.
type PresetLoader interface {
	// Load parses the preset at path.
	// A missing file returns an error wrapping fs.ErrNotExist.
	// A malformed file returns an error wrapping domain.ErrInvalidInput.
	Load(path string) (*domain.DevicePreset, error)
}
