package services

import (
	"fmt"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure GeometryService implements the interface.
var _ driving.GeometryService = (*GeometryService)(nil)

// GeometryService builds and writes FinFET geometry descriptions.
type GeometryService struct {
	writer driven.GeometryWriter
}

// NewGeometryService creates a new geometry service.
func NewGeometryService(writer driven.GeometryWriter) *GeometryService {
	return &GeometryService{writer: writer}
}

// Describe validates params and builds the geometry description.
func (s *GeometryService) Describe(params domain.DeviceParameters) (*domain.GeometryDescription, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return domain.NewFinFETGeometry(params), nil
}

// Generate validates params, builds the description and writes it to path.
// Filesystem errors are returned wrapped so errors.Is matches fs errors.
func (s *GeometryService) Generate(params domain.DeviceParameters, path string) (*domain.GeometryDescription, error) {
	logger.Section("Geometry")

	desc, err := s.Describe(params)
	if err != nil {
		return nil, err
	}

	logger.Debug("Device: fin_height=%g gate_length=%g oxide_thickness=%g source_drain_length=%g",
		params.FinHeight, params.GateLength, params.OxideThickness, params.SourceDrainLength)

	if err := s.writer.WriteFile(path, desc); err != nil {
		return nil, fmt.Errorf("write geometry %s: %w", path, err)
	}

	logger.Info("Generated %s (%d points, %d lines, %d surfaces)",
		path, len(desc.Points), len(desc.Lines), len(desc.Surfaces))
	return desc, nil
}
