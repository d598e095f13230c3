package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure MeshService implements the interface.
var _ driving.MeshService = (*MeshService)(nil)

// MeshService invokes the external mesher on a geometry description file.
type MeshService struct {
	runner  driven.ToolRunner
	command string
}

// NewMeshService creates a mesh service running command.
// An empty command defaults to gmsh.
func NewMeshService(runner driven.ToolRunner, command string) *MeshService {
	if command == "" {
		command = domain.DefaultMesherCommand
	}
	return &MeshService{
		runner:  runner,
		command: command,
	}
}

// MeshArgs returns the mesher arguments for a 2D mesh in legacy format 2:
// -2 <geo> -o <msh> -format msh2.
func MeshArgs(geoPath, mshPath string) []string {
	return []string{
		"-" + strconv.Itoa(domain.MeshDimension),
		geoPath,
		"-o", mshPath,
		"-format", domain.MeshFormat,
	}
}

// Build meshes geoPath into mshPath with a single blocking invocation.
// The mesh file is not inspected; a zero exit status is taken as success.
func (s *MeshService) Build(ctx context.Context, geoPath, mshPath string) (*domain.MeshArtifact, error) {
	logger.Section("Mesh")

	inv := domain.ToolInvocation{
		Name: s.command,
		Args: MeshArgs(geoPath, mshPath),
	}

	if err := s.runner.Run(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrToolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMeshGenerationFailed, err)
	}

	logger.Info("Generated %s using %s", mshPath, s.command)
	return &domain.MeshArtifact{
		GeometryPath: geoPath,
		MeshPath:     mshPath,
		Dimension:    domain.MeshDimension,
		Format:       domain.MeshFormat,
	}, nil
}
