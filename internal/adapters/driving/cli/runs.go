package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

var (
	runsLimit int
	runsJSON  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	RunE:  runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show details of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.PersistentFlags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs")
	runsCmd.PersistentFlags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runHistory == nil {
		return errNotConfigured("run history")
	}

	runs, err := runHistory.List(context.Background(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if runsJSON {
		return outputJSON(cmd, runs)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	st := stylesFor(cmd)
	for i := range runs {
		run := &runs[i]
		status := st.Success.Render(fmt.Sprintf("%-9s", run.Status))
		if !run.Succeeded() {
			status = st.Error.Render(fmt.Sprintf("%-9s", run.Status))
		}
		cmd.Printf("%s  %-8s %s %s  %s\n",
			run.ID, run.Kind, status,
			run.StartedAt.Local().Format(time.DateTime),
			st.Muted.Render(run.Duration().Round(time.Millisecond).String()))
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if runHistory == nil {
		return errNotConfigured("run history")
	}

	run, err := runHistory.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get run %s: %w", args[0], err)
	}

	if runsJSON {
		return outputJSON(cmd, run)
	}

	st := stylesFor(cmd)
	printRun(cmd, st, run)
	cmd.Printf("  %s %s\n", st.Label.Render("kind:    "), run.Kind)
	cmd.Printf("  %s %s\n", st.Label.Render("started: "), run.StartedAt.Local().Format(time.RFC3339))
	cmd.Println(st.Section.Render("  [Device]"))
	printDevice(cmd, st, run.Parameters)
	return nil
}

// runJSON is the JSON form of a run.
type runJSON struct {
	ID         string                  `json:"id"`
	Kind       domain.RunKind          `json:"kind"`
	Status     domain.RunStatus        `json:"status"`
	StartedAt  time.Time               `json:"started_at"`
	EndedAt    time.Time               `json:"ended_at"`
	Parameters domain.DeviceParameters `json:"parameters"`
	Artifacts  map[string]string       `json:"artifacts"`
	Error      string                  `json:"error,omitempty"`
}

func toRunJSON(r *domain.Run) runJSON {
	return runJSON{
		ID:         r.ID,
		Kind:       r.Kind,
		Status:     r.Status,
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
		Parameters: r.Parameters,
		Artifacts:  r.Artifacts,
		Error:      r.Error,
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	switch r := v.(type) {
	case []domain.Run:
		out := make([]runJSON, len(r))
		for i := range r {
			out[i] = toRunJSON(&r[i])
		}
		v = out
	case *domain.Run:
		v = toRunJSON(r)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
