package driven

import (
	"io"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

// GeometryWriter renders a geometry description in the mesher's input grammar.
type GeometryWriter interface {
	// Render writes the description to w.
	Render(w io.Writer, desc *domain.GeometryDescription) error

	// WriteFile renders the description to path, overwriting any existing file.
	// The parent directory must already exist.
	WriteFile(path string, desc *domain.GeometryDescription) error
}
