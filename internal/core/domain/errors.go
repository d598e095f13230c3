package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent failures the harness reports to its callers.
// Filesystem errors are not wrapped in a dedicated kind and propagate as-is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// External Tool Errors.

	// ErrToolNotFound indicates an external executable could not be located or started.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolFailed indicates an external executable ran and exited with a non-zero status.
	ErrToolFailed = errors.New("tool invocation failed")

	// ErrMeshGenerationFailed indicates the mesher exited with a non-zero status.
	ErrMeshGenerationFailed = errors.New("mesh generation failed")

	// ErrSimulationFailed indicates the device simulator exited with a non-zero status.
	ErrSimulationFailed = errors.New("simulation failed")
)

// ToolError describes a failed external tool invocation.
// It unwraps to ErrToolNotFound or ErrToolFailed, and to the underlying cause.
type ToolError struct {
	// Tool is the executable name or path.
	Tool string

	// Args are the arguments passed to the tool.
	Args []string

	// ExitCode is the process exit status, or -1 if the process never ran.
	ExitCode int

	// NotFound is true when the executable could not be located or started.
	NotFound bool

	// Err is the underlying error from the process runtime.
	Err error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("%s: %s: ensure %s is installed and on your PATH", ErrToolNotFound, e.Tool, e.Tool)
	}
	return fmt.Sprintf("%s: %s exited with status %d", ErrToolFailed, e.CommandLine(), e.ExitCode)
}

// Unwrap returns the error kind and the underlying cause.
func (e *ToolError) Unwrap() []error {
	kind := ErrToolFailed
	if e.NotFound {
		kind = ErrToolNotFound
	}
	if e.Err == nil {
		return []error{kind}
	}
	return []error{kind, e.Err}
}

// CommandLine returns the invocation as a single space separated string.
func (e *ToolError) CommandLine() string {
	return strings.Join(append([]string{e.Tool}, e.Args...), " ")
}

// ExitCodeOf extracts the exit code from an error chain containing a ToolError.
// Returns -1 and false if the chain has no ToolError.
func ExitCodeOf(err error) (int, bool) {
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		return -1, false
	}
	return toolErr.ExitCode, true
}
