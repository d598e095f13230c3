package driving

import "github.com/custodia-labs/finfet-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Reload re-reads settings from storage so later calls to Get see
	// changes made outside the process.
	Reload() error

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDeviceParameter updates one device dimension by name.
	SetDeviceParameter(name string, value float64) error

	// ApplyPreset loads a device preset file and stores its values.
	ApplyPreset(path string) (*domain.DevicePreset, error)

	// Reset removes stored device parameters so defaults apply.
	Reset() error

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are persisted.
	Path() string
}
