package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

func TestSource_Load(t *testing.T) {
	field, err := NewSource(100, 1).Load()
	require.NoError(t, err)
	require.NoError(t, field.Validate())
	assert.Equal(t, 100, field.Len())

	for i := range field.Values {
		assert.GreaterOrEqual(t, field.X[i], 0.0)
		assert.Less(t, field.X[i], 1.0)
		assert.GreaterOrEqual(t, field.Y[i], 0.0)
		assert.Less(t, field.Y[i], 1.0)
		assert.InDelta(t, Potential(field.X[i], field.Y[i]), field.Values[i], 1e-15)
		assert.GreaterOrEqual(t, field.Values[i], -1.0)
		assert.LessOrEqual(t, field.Values[i], 1.0)
	}
}

func TestSource_Load_Reproducible(t *testing.T) {
	a, err := NewSource(50, 42).Load()
	require.NoError(t, err)
	b, err := NewSource(50, 42).Load()
	require.NoError(t, err)
	c, err := NewSource(50, 43).Load()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.X, c.X)
}

func TestSource_Load_InvalidSamples(t *testing.T) {
	field, err := NewSource(0, 1).Load()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, field)
}

func TestPotential(t *testing.T) {
	assert.InDelta(t, 0.0, Potential(0, 0), 1e-12)
	assert.InDelta(t, 1.0, Potential(0.5, 0), 1e-12)
	assert.InDelta(t, -1.0, Potential(0.5, 1), 1e-12)
	assert.InDelta(t, 0.0, Potential(0.5, 0.5), 1e-12)
}
