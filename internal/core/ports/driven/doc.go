// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration (TOML file)
//   - GeometryWriter: Renders a GeometryDescription in the mesher's input grammar
//   - ToolRunner: Runs external executables (mesher, simulator) as subprocesses
//   - ContourPlotter: Renders scalar fields to an image file
//   - FieldSource: Supplies result data for visualisation
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history persistence. Without it, runs are not recorded.
//   - ConfigWatcher: File change notification for watch mode.
//   - PresetLoader: Device preset files. Without it, presets cannot be applied.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
