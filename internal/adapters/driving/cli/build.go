package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// deviceFlagValues holds per-run overrides for device dimensions.
type deviceFlagValues struct {
	values map[string]*float64
	output string
}

func addDeviceFlags(cmd *cobra.Command) *deviceFlagValues {
	d := &deviceFlagValues{values: make(map[string]*float64)}
	defaults := domain.DefaultDeviceParameters()
	for _, f := range defaults.Fields() {
		v := new(float64)
		d.values[f.Name] = v
		cmd.Flags().Float64Var(v, flagName(f.Name), 0, "override "+f.Name+" in meters")
	}
	cmd.Flags().StringVarP(&d.output, "output", "o", "", "output directory")
	return d
}

// apply copies changed flags onto settings.
func (d *deviceFlagValues) apply(cmd *cobra.Command, settings *domain.AppSettings) error {
	for name, v := range d.values {
		if !cmd.Flags().Changed(flagName(name)) {
			continue
		}
		device, err := settings.Device.With(name, *v)
		if err != nil {
			return err
		}
		settings.Device = device
	}
	if cmd.Flags().Changed("output") {
		settings.Output.Dir = d.output
	}
	return nil
}

// flagName converts a parameter name to flag form: fin_width -> fin-width.
func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

var buildFlags *deviceFlagValues

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the device geometry and mesh it",
	Long: `Writes the FinFET geometry description to <output>/finfet.geo and runs
gmsh to produce a 2D mesh at <output>/finfet.msh.

The output directory is created if needed. The run is recorded in the run
history whether it succeeds or fails.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var geometryFlags *deviceFlagValues

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Write the device geometry description only",
	Args:  cobra.NoArgs,
	RunE:  runGeometry,
}

var meshCmd = &cobra.Command{
	Use:   "mesh [geo-file] [msh-file]",
	Short: "Mesh an existing geometry description with gmsh",
	Long: `Runs gmsh -2 <geo-file> -o <msh-file> -format msh2.

Paths default to finfet.geo and finfet.msh in the configured output directory.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMesh,
}

func init() {
	buildFlags = addDeviceFlags(buildCmd)
	geometryFlags = addDeviceFlags(geometryCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(geometryCmd)
	rootCmd.AddCommand(meshCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if pipelineService == nil {
		return errNotConfigured("pipeline")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := buildFlags.apply(cmd, settings); err != nil {
		return err
	}

	run, err := pipelineService.Build(context.Background(), *settings)
	printRun(cmd, stylesFor(cmd), run)
	return err
}

func runGeometry(cmd *cobra.Command, _ []string) error {
	if geometryService == nil {
		return errNotConfigured("geometry")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := geometryFlags.apply(cmd, settings); err != nil {
		return err
	}
	if err := ensureOutputDir(settings.Output.Dir); err != nil {
		return err
	}

	path := settings.Output.GeometryPath()
	desc, err := geometryService.Generate(settings.Device, path)
	if err != nil {
		return err
	}

	st := stylesFor(cmd)
	cmd.Printf("%s %s\n", st.Success.Render("Generated"), path)
	cmd.Printf("  %d points, %d lines, %d surfaces\n", len(desc.Points), len(desc.Lines), len(desc.Surfaces))
	return nil
}

func runMesh(cmd *cobra.Command, args []string) error {
	if meshService == nil {
		return errNotConfigured("mesh")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	geoPath, mshPath := settings.Output.GeometryPath(), settings.Output.MeshPath()
	if len(args) > 0 {
		geoPath = args[0]
	}
	if len(args) > 1 {
		mshPath = args[1]
	}

	artifact, err := meshService.Build(context.Background(), geoPath, mshPath)
	if err != nil {
		return err
	}

	cmd.Printf("%s %s\n", stylesFor(cmd).Success.Render("Generated"), artifact.MeshPath)
	return nil
}
