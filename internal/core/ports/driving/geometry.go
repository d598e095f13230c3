package driving

import "github.com/custodia-labs/finfet-cli/internal/core/domain"

// GeometryService produces geometry descriptions from device parameters.
type GeometryService interface {
	// Describe validates params and builds the geometry description.
	Describe(params domain.DeviceParameters) (*domain.GeometryDescription, error)

	// Generate validates params, builds the description and writes it to path,
	// overwriting any existing file. Output is identical for identical params.
	Generate(params domain.DeviceParameters, path string) (*domain.GeometryDescription, error)
}
