package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	simulateVoltage float64
	plotVoltage     float64
	plotLevels      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the gss device simulator on the current mesh",
	Long: `Instantiates the simulator deck template with the gate voltage and mesh
path, writes it to <output>/finfet_run.pdr and runs gss on it.

Run "finfet build" first to produce the mesh.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the electrostatic potential",
	Long: `Renders a filled contour plot of the electrostatic potential to
<output>/potential.png.

Until simulator output can be read, the plot is drawn from a synthetic
field of sin(πx)·cos(πy) over random sample points.`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	simulateCmd.Flags().Float64Var(&simulateVoltage, "vg", 0, "gate voltage in volts (default from settings)")
	plotCmd.Flags().Float64Var(&plotVoltage, "vg", 0, "gate voltage for the plot title (default from settings)")
	plotCmd.Flags().IntVar(&plotLevels, "levels", 0, "number of contour levels (default from settings)")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(plotCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if pipelineService == nil {
		return errNotConfigured("pipeline")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	vg := settings.Simulator.GateVoltage
	if cmd.Flags().Changed("vg") {
		vg = simulateVoltage
	}

	run, err := pipelineService.Simulate(context.Background(), *settings, vg)
	printRun(cmd, stylesFor(cmd), run)
	return err
}

func runPlot(cmd *cobra.Command, _ []string) error {
	if pipelineService == nil {
		return errNotConfigured("pipeline")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	vg := settings.Simulator.GateVoltage
	if cmd.Flags().Changed("vg") {
		vg = plotVoltage
	}
	if cmd.Flags().Changed("levels") {
		settings.Plot.Levels = plotLevels
	}

	run, err := pipelineService.Plot(context.Background(), *settings, vg)
	printRun(cmd, stylesFor(cmd), run)
	return err
}
