package driving

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// MeshService invokes the external mesher.
type MeshService interface {
	// Build meshes the geometry file at geoPath into mshPath.
	// Returns a nil artifact on any failure. Errors match
	// domain.ErrToolNotFound or domain.ErrMeshGenerationFailed.
	Build(ctx context.Context, geoPath, mshPath string) (*domain.MeshArtifact, error)
}
