package domain

import "time"

// RunKind identifies which stage a run executed.
type RunKind string

// Available run kinds.
const (
	// RunKindBuild is geometry generation followed by meshing.
	RunKindBuild RunKind = "build"

	// RunKindSimulate is a device simulator invocation.
	RunKindSimulate RunKind = "simulate"

	// RunKindPlot is a result visualisation.
	RunKindPlot RunKind = "plot"
)

// IsValid returns true if the run kind is recognised.
func (k RunKind) IsValid() bool {
	switch k {
	case RunKindBuild, RunKindSimulate, RunKindPlot:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k RunKind) String() string {
	return string(k)
}

// RunStatus is the outcome of a run.
type RunStatus string

// Available run statuses.
const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// Artifact keys used in Run.Artifacts.
const (
	ArtifactGeometry = "geometry"
	ArtifactMesh     = "mesh"
	ArtifactDeck     = "deck"
	ArtifactPlot     = "plot"
)

// Run is a recorded execution of one harness stage.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// Kind is the stage that was run.
	Kind RunKind

	// Status is the outcome.
	Status RunStatus

	// StartedAt is when the run started.
	StartedAt time.Time

	// EndedAt is when the run completed.
	EndedAt time.Time

	// Parameters are the device dimensions in effect for the run.
	Parameters DeviceParameters

	// Artifacts maps artifact keys to file paths written by the run.
	Artifacts map[string]string

	// Error contains the error message if Status is failed.
	Error string
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Succeeded returns true if the run completed without error.
func (r *Run) Succeeded() bool {
	return r.Status == RunStatusSucceeded
}
