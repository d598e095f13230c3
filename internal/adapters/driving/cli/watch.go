package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever the configuration changes",
	Long: `Runs "finfet build" once, then again every time the configuration file
is saved. Failed builds are reported and watching continues.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if watchService == nil {
		return errNotConfigured("watch")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := stylesFor(cmd)
	if settingsService != nil {
		cmd.Printf("%s %s\n", st.Muted.Render("Watching"), settingsService.Path())
	}

	return watchService.Watch(ctx, func(run *domain.Run, err error) {
		if run != nil {
			printRun(cmd, st, run)
			return
		}
		if err != nil {
			cmd.PrintErrf("%s %v\n", st.Error.Render("Error:"), err)
		}
	})
}
