// Package services implements the driving port interfaces.
// Services contain the harness logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. External tools are reached
// only through driven.ToolRunner.
package services
