// Package exec runs external tools as blocking subprocesses.
package exec

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	osexec "os/exec"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Verify interface compliance.
var _ driven.ToolRunner = (*Runner)(nil)

// Runner implements driven.ToolRunner using os/exec.
// The tool's stdout and stderr are passed through.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner that streams tool output to the process's stdout and stderr.
func NewRunner() *Runner {
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the tool and waits for it to exit.
func (r *Runner) Run(ctx context.Context, inv domain.ToolInvocation) error {
	if inv.Name == "" {
		return &domain.ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: -1, NotFound: true,
			Err: errors.New("empty command")}
	}

	logger.Command(inv.Name, inv.Args)

	cmd := osexec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *osexec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return &domain.ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: exitErr.ExitCode(), Err: err}
	case errors.Is(err, osexec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return &domain.ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: -1, NotFound: true, Err: err}
	default:
		return &domain.ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: -1, Err: err}
	}
}
