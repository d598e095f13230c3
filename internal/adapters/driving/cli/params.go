package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Manage device parameters and settings",
	Long: `View and change the device dimensions and tool settings stored in the
configuration file.

All dimensions are in meters.`,
	RunE: runParamsShow,
}

var paramsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runParamsShow,
}

var paramsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a device dimension",
	Long: `Set a device dimension in meters.

Available names:
  fin_width            fin width (recorded, not used in the 2D cross-section)
  fin_height           fin height; also the gate height
  gate_length          gate length; also the channel length
  oxide_thickness      gate oxide thickness
  source_drain_length  length of each of the source and drain regions`,
	Args: cobra.ExactArgs(2),
	RunE: runParamsSet,
}

var paramsLoadCmd = &cobra.Command{
	Use:   "load <preset.yaml>",
	Short: "Apply device dimensions from a preset file",
	Long: `Apply device dimensions from a YAML preset file. Dimensions not listed
in the file keep their current value.

Example preset:
  name: 14nm
  device:
    gate_length: 14e-9
    fin_height: 42e-9`,
	Args: cobra.ExactArgs(1),
	RunE: runParamsLoad,
}

var paramsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default device dimensions",
	Args:  cobra.NoArgs,
	RunE:  runParamsReset,
}

func init() {
	paramsCmd.AddCommand(paramsShowCmd)
	paramsCmd.AddCommand(paramsSetCmd)
	paramsCmd.AddCommand(paramsLoadCmd)
	paramsCmd.AddCommand(paramsResetCmd)
	rootCmd.AddCommand(paramsCmd)
}

func runParamsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	st := stylesFor(cmd)

	cmd.Println(st.Title.Render("Current Settings"))
	if path := settingsService.Path(); path != "" {
		cmd.Printf("%s %s\n", st.Muted.Render("Config file:"), path)
	}
	cmd.Println()

	cmd.Println(st.Section.Render("[Device]"))
	printDevice(cmd, st, settings.Device)
	cmd.Println()

	cmd.Println(st.Section.Render("[Output]"))
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Println()

	cmd.Println(st.Section.Render("[Mesher]"))
	cmd.Printf("  Command: %s\n", settings.Mesher.Command)
	cmd.Println()

	cmd.Println(st.Section.Render("[Simulator]"))
	cmd.Printf("  Command: %s\n", settings.Simulator.Command)
	cmd.Printf("  Template: %s\n", settings.Simulator.Template)
	cmd.Printf("  Gate voltage: %v V\n", settings.Simulator.GateVoltage)
	cmd.Println()

	cmd.Println(st.Section.Render("[Plot]"))
	cmd.Printf("  Levels: %d\n", settings.Plot.Levels)
	cmd.Printf("  Samples: %d\n", settings.Plot.Samples)
	cmd.Printf("  Seed: %d\n", settings.Plot.Seed)

	return nil
}

func runParamsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	name := args[0]
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[1])
	}

	if err := settingsService.SetDeviceParameter(name, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}

	cmd.Printf("%s = %s\n", name, formatMeters(value))
	return nil
}

func runParamsLoad(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	preset, err := settingsService.ApplyPreset(args[0])
	if err != nil {
		return fmt.Errorf("failed to load preset %s: %w", args[0], err)
	}

	st := stylesFor(cmd)
	if preset.Name != "" {
		cmd.Printf("Applied preset %s\n", st.Title.Render(preset.Name))
	} else {
		cmd.Printf("Applied preset %s\n", args[0])
	}
	for _, name := range sortedKeys(preset.Values) {
		cmd.Printf("  %s = %s\n", name, formatMeters(preset.Values[name]))
	}
	return nil
}

func runParamsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset parameters: %w", err)
	}

	cmd.Println("Device parameters reset to defaults.")
	return nil
}
