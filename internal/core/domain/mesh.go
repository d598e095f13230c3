package domain

// Mesh output settings requested from the external mesher.
const (
	MeshDimension = 2
	MeshFormat    = "msh2"
)

// MeshArtifact is the mesh file produced by the external mesher.
// Its contents are never parsed; it exists only as a path handed to later stages.
type MeshArtifact struct {
	// GeometryPath is the geometry description the mesh was built from.
	GeometryPath string

	// MeshPath is where the mesher was asked to write its output.
	MeshPath string

	// Dimension is the requested mesh dimension.
	Dimension int

	// Format is the requested mesh file format version.
	Format string
}

// ToolInvocation describes a single external tool run.
type ToolInvocation struct {
	// Name is the executable name (resolved via PATH) or path.
	Name string

	// Args are the command-line arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}
