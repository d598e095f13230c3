package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

func stylesFor(cmd *cobra.Command) *styles.Styles {
	return styles.For(cmd.OutOrStdout())
}

// formatMeters renders a length in nanometres alongside the raw value.
func formatMeters(v float64) string {
	return fmt.Sprintf("%s (%s nm)", strconv.FormatFloat(v, 'g', -1, 64), strconv.FormatFloat(v*1e9, 'g', 6, 64))
}

func printDevice(cmd *cobra.Command, st *styles.Styles, p domain.DeviceParameters) {
	for _, f := range p.Fields() {
		cmd.Printf("  %s %s\n", st.Label.Render(fmt.Sprintf("%-20s", f.Name+":")), formatMeters(f.Value))
	}
}

func printRun(cmd *cobra.Command, st *styles.Styles, run *domain.Run) {
	if run == nil {
		return
	}

	status := st.Success.Render(string(run.Status))
	if !run.Succeeded() {
		status = st.Error.Render(string(run.Status))
	}

	cmd.Printf("%s %s %s (%s)\n", st.Title.Render("Run"), run.ID, status, run.Duration().Round(time.Millisecond))
	for _, key := range sortedKeys(run.Artifacts) {
		cmd.Printf("  %s %s\n", st.Label.Render(fmt.Sprintf("%-9s", key+":")), run.Artifacts[key])
	}
	if run.Error != "" {
		cmd.Printf("  %s %s\n", st.Label.Render("error:   "), run.Error)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadSettings returns the current settings.
func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errNotConfigured("settings")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func errNotConfigured(name string) error {
	return fmt.Errorf("%s service not configured", name)
}

func ensureOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
