package gonum

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

var _ plotter.GridXYZ = (*grid)(nil)

// idwPower is the distance exponent for inverse distance weighting.
const idwPower = 2

// grid is a regular lattice of interpolated values.
// z has one row per y sample and one column per x sample.
type grid struct {
	xs, ys []float64
	z      *mat.Dense
}

// Dims returns the number of columns and rows.
func (g *grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// Z returns the value at column c, row r.
func (g *grid) Z(c, r int) float64 { return g.z.At(r, c) }

// X returns the x coordinate of column c.
func (g *grid) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g *grid) Y(r int) float64 { return g.ys[r] }

// interpolate grids field over its bounding box with n samples per axis.
// A node that coincides with a sample takes that sample's value.
func interpolate(field *domain.ScalarField, n int) *grid {
	xlo, xhi := bounds(field.X)
	ylo, yhi := bounds(field.Y)

	g := &grid{
		xs: linspace(xlo, xhi, n),
		ys: linspace(ylo, yhi, n),
		z:  mat.NewDense(n, n, nil),
	}

	for r, y := range g.ys {
		for c, x := range g.xs {
			g.z.Set(r, c, idw(field, x, y))
		}
	}
	return g
}

func idw(field *domain.ScalarField, x, y float64) float64 {
	var num, den float64
	for i, v := range field.Values {
		dx, dy := field.X[i]-x, field.Y[i]-y
		d2 := dx*dx + dy*dy
		if d2 == 0 {
			return v
		}
		w := 1 / math.Pow(d2, idwPower/2.0)
		num += w * v
		den += w
	}
	return num / den
}

// bounds returns the range of v, widened when degenerate so the axis has extent.
func bounds(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if lo == hi {
		pad := 0.5
		if lo != 0 {
			pad = math.Abs(lo) / 2
		}
		lo, hi = lo-pad, hi+pad
	}
	return lo, hi
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = (lo + hi) / 2
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
