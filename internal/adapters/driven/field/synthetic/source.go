// Package synthetic provides a placeholder field source that produces an
// analytic potential over random sample positions. It stands in for a
// simulator output reader.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.FieldSource = (*Source)(nil)

// Source generates sin(πx)·cos(πy) at uniformly random points in [0,1)².
type Source struct {
	samples int
	seed    int64
}

// NewSource creates a source producing samples points from seed.
// Identical seeds produce identical fields.
func NewSource(samples int, seed int64) *Source {
	return &Source{samples: samples, seed: seed}
}

// Load returns the generated field.
func (s *Source) Load() (*domain.ScalarField, error) {
	if s.samples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", domain.ErrInvalidInput, s.samples)
	}

	//nolint:gosec // G404: reproducible placeholder data, not security sensitive
	rng := rand.New(rand.NewSource(s.seed))

	field := &domain.ScalarField{
		X:      make([]float64, s.samples),
		Y:      make([]float64, s.samples),
		Values: make([]float64, s.samples),
	}
	for i := range field.Values {
		x, y := rng.Float64(), rng.Float64()
		field.X[i] = x
		field.Y[i] = y
		field.Values[i] = Potential(x, y)
	}
	return field, nil
}

// Potential is the analytic placeholder potential.
func Potential(x, y float64) float64 {
	return math.Sin(x*math.Pi) * math.Cos(y*math.Pi)
}
