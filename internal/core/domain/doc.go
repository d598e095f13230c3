// Package domain defines the core entities of the FinFET harness.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DeviceParameters: The five scalar dimensions of the device
//   - GeometryDescription: Points, lines, loops, surfaces and physical tags
//   - MeshArtifact: The opaque mesh file produced by the external mesher
//   - ToolInvocation / ToolError: Subprocess contract for external tools
//   - ScalarField: Scattered result data for visualisation
//   - Run: A recorded execution of the pipeline, simulator or plotter
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
