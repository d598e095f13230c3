package services

import (
	"fmt"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDevicePrefix      = "device."
	keyOutputDir         = "output.dir"
	keyMesherCommand     = "mesher.command"
	keySimulatorCommand  = "simulator.command"
	keySimulatorTemplate = "simulator.template"
	keySimulatorVoltage  = "simulator.gate_voltage"
	keyPlotLevels        = "plot.levels"
	keyPlotSamples       = "plot.samples"
	keyPlotSeed          = "plot.seed"
)

// DeviceKey returns the config key for a device parameter name.
func DeviceKey(name string) string {
	return keyDevicePrefix + name
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	presets     driven.PresetLoader
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or mistyped values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	device := defaults.Device
	for _, f := range defaults.Device.Fields() {
		var err error
		device, err = device.With(f.Name, s.getFloat(DeviceKey(f.Name), f.Value))
		if err != nil {
			return nil, err
		}
	}

	settings := &domain.AppSettings{
		Device: device,
		Output: domain.OutputSettings{
			Dir: s.getString(keyOutputDir, defaults.Output.Dir),
		},
		Mesher: domain.MesherSettings{
			Command: s.getString(keyMesherCommand, defaults.Mesher.Command),
		},
		Simulator: domain.SimulatorSettings{
			Command:     s.getString(keySimulatorCommand, defaults.Simulator.Command),
			Template:    s.getString(keySimulatorTemplate, defaults.Simulator.Template),
			GateVoltage: s.getFloat(keySimulatorVoltage, defaults.Simulator.GateVoltage),
		},
		Plot: domain.PlotSettings{
			Levels:  s.getInt(keyPlotLevels, defaults.Plot.Levels),
			Samples: s.getInt(keyPlotSamples, defaults.Plot.Samples),
			Seed:    s.getInt(keyPlotSeed, defaults.Plot.Seed),
		},
	}

	return settings, nil
}

// Reload re-reads settings from storage, discarding any cached values.
func (s *SettingsService) Reload() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reload settings %s: %w", s.configStore.Path(), err)
	}
	return nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	for _, f := range settings.Device.Fields() {
		if err := s.configStore.Set(DeviceKey(f.Name), f.Value); err != nil {
			return fmt.Errorf("save device %s: %w", f.Name, err)
		}
	}

	values := []struct {
		key   string
		value any
	}{
		{keyOutputDir, settings.Output.Dir},
		{keyMesherCommand, settings.Mesher.Command},
		{keySimulatorCommand, settings.Simulator.Command},
		{keySimulatorTemplate, settings.Simulator.Template},
		{keySimulatorVoltage, settings.Simulator.GateVoltage},
		{keyPlotLevels, settings.Plot.Levels},
		{keyPlotSamples, settings.Plot.Samples},
		{keyPlotSeed, settings.Plot.Seed},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetDeviceParameter updates one device dimension by name.
// The resulting parameter set must be valid.
func (s *SettingsService) SetDeviceParameter(name string, value float64) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	device, err := settings.Device.With(name, value)
	if err != nil {
		return err
	}
	if err := device.Validate(); err != nil {
		return err
	}

	return s.configStore.Set(DeviceKey(name), value)
}

// WithPresetLoader enables ApplyPreset.
func (s *SettingsService) WithPresetLoader(loader driven.PresetLoader) *SettingsService {
	s.presets = loader
	return s
}

// ApplyPreset loads the preset at path and stores its device values.
// Nothing is stored unless the resulting parameter set is valid.
func (s *SettingsService) ApplyPreset(path string) (*domain.DevicePreset, error) {
	if s.presets == nil {
		return nil, fmt.Errorf("preset loader: %w", domain.ErrNotImplemented)
	}

	preset, err := s.presets.Load(path)
	if err != nil {
		return nil, err
	}

	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	device, err := preset.ApplyTo(settings.Device)
	if err != nil {
		return nil, err
	}

	for _, f := range device.Fields() {
		if _, ok := preset.Values[f.Name]; !ok {
			continue
		}
		if err := s.configStore.Set(DeviceKey(f.Name), f.Value); err != nil {
			return nil, fmt.Errorf("save device %s: %w", f.Name, err)
		}
	}
	return preset, nil
}

// Reset removes stored device parameters so defaults apply.
func (s *SettingsService) Reset() error {
	for _, name := range domain.AllParameterNames() {
		if err := s.configStore.Delete(DeviceKey(name)); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if err := settings.Device.Validate(); err != nil {
		return err
	}
	if settings.Mesher.Command == "" {
		return fmt.Errorf("%w: mesher command is empty", domain.ErrInvalidInput)
	}
	if settings.Plot.Levels <= 0 {
		return fmt.Errorf("%w: plot levels must be positive", domain.ErrInvalidInput)
	}
	if settings.Plot.Samples <= 0 {
		return fmt.Errorf("%w: plot samples must be positive", domain.ErrInvalidInput)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt distinguishes a stored zero from a missing key.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64:
		return s.configStore.GetInt(key)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case float64, float32, int, int64:
		return s.configStore.GetFloat(key)
	default:
		return defaultVal
	}
}
