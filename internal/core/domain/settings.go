package domain

import "path/filepath"

// Default file names inside the output directory.
const (
	DefaultOutputDir    = "output"
	DefaultGeometryFile = "finfet.geo"
	DefaultMeshFile     = "finfet.msh"
	DefaultDeckFile     = "finfet_run.pdr"
	DefaultPlotFile     = "potential.png"
)

// Default external tool settings.
const (
	DefaultMesherCommand    = "gmsh"
	DefaultSimulatorCommand = "gss"
	DefaultDeckTemplate     = "templates/finfet.pdr"
	DefaultPlotSamples      = 100
	DefaultPlotSeed         = 1
	DefaultGateVoltage      = 0.5
)

// OutputSettings controls where artifacts are written.
type OutputSettings struct {
	// Dir is the output directory. It is created if absent.
	Dir string
}

// GeometryPath returns the geometry description file path.
func (o OutputSettings) GeometryPath() string {
	return filepath.Join(o.Dir, DefaultGeometryFile)
}

// MeshPath returns the mesh artifact file path.
func (o OutputSettings) MeshPath() string {
	return filepath.Join(o.Dir, DefaultMeshFile)
}

// DeckPath returns the instantiated simulator deck path.
func (o OutputSettings) DeckPath() string {
	return filepath.Join(o.Dir, DefaultDeckFile)
}

// PlotPath returns the plot image path.
func (o OutputSettings) PlotPath() string {
	return filepath.Join(o.Dir, DefaultPlotFile)
}

// MesherSettings configures the external mesh generator.
type MesherSettings struct {
	// Command is the mesher executable name or path.
	Command string
}

// SimulatorSettings configures the external device simulator.
type SimulatorSettings struct {
	// Command is the simulator executable name or path.
	Command string

	// Template is the deck template path.
	Template string

	// GateVoltage is the default gate bias, in volts.
	GateVoltage float64
}

// PlotSettings configures result visualisation.
type PlotSettings struct {
	// Levels is the number of contour levels.
	Levels int

	// Samples is the number of synthetic points when no simulator output exists.
	Samples int

	// Seed seeds the synthetic field generator.
	Seed int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Device holds the device dimensions.
	Device DeviceParameters

	// Output holds artifact locations.
	Output OutputSettings

	// Mesher holds mesh generator settings.
	Mesher MesherSettings

	// Simulator holds device simulator settings.
	Simulator SimulatorSettings

	// Plot holds visualisation settings.
	Plot PlotSettings
}

// DefaultAppSettings returns settings matching the reference device and tool names.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Device: DefaultDeviceParameters(),
		Output: OutputSettings{
			Dir: DefaultOutputDir,
		},
		Mesher: MesherSettings{
			Command: DefaultMesherCommand,
		},
		Simulator: SimulatorSettings{
			Command:     DefaultSimulatorCommand,
			Template:    DefaultDeckTemplate,
			GateVoltage: DefaultGateVoltage,
		},
		Plot: PlotSettings{
			Levels:  DefaultPlotLevels,
			Samples: DefaultPlotSamples,
			Seed:    DefaultPlotSeed,
		},
	}
}
