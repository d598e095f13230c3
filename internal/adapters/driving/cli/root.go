// Package cli provides the finfet command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services configured by main.
var (
	settingsService driving.SettingsService
	geometryService driving.GeometryService
	meshService     driving.MeshService
	pipelineService driving.PipelineService
	runHistory      driving.RunHistory
	watchService    driving.WatchService
)

// Services bundles everything the commands need.
type Services struct {
	Settings driving.SettingsService
	Geometry driving.GeometryService
	Mesh     driving.MeshService
	Pipeline driving.PipelineService
	Runs     driving.RunHistory
	Watch    driving.WatchService

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds services once global flags are parsed.
// configDir is empty unless --config-dir was given.
type Bootstrap func(configDir string) (*Services, error)

var (
	bootstrap Bootstrap
	closer    func() error
)

var rootCmd = &cobra.Command{
	Use:   "finfet",
	Short: "FinFET device simulation harness",
	Long: `finfet generates the cross-section geometry of a simplified 2D FinFET,
meshes it with gmsh, runs the gss device simulator and plots the
electrostatic potential.

Device dimensions are read from ~/.finfet/config.toml and can be changed
with "finfet params set" or overridden per run with flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output and tool command lines")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.finfet)")
}

// SetBootstrap registers the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	settingsService = s.Settings
	geometryService = s.Geometry
	meshService = s.Mesh
	pipelineService = s.Pipeline
	runHistory = s.Runs
	watchService = s.Watch
	closer = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closer != nil {
		if cerr := closer(); cerr != nil {
			logger.Warn("Failed to close services: %v", cerr)
		}
		closer = nil
	}
	return err
}

// ExitCode returns the process status for err: 0 for nil, the external
// tool's status when a tool exited non-zero, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := domain.ExitCodeOf(err); ok && code > 0 {
		return code
	}
	return 1
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}
	s, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	if s == nil {
		return errors.New("bootstrap returned no services")
	}
	SetServices(s)
	return nil
}
