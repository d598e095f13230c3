package gonum

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ContourPlotter = (*Plotter)(nil)

// Default image geometry.
const (
	DefaultWidth      = 8 * vg.Inch
	DefaultHeight     = 6 * vg.Inch
	DefaultBarWidth   = 1.3 * vg.Inch
	DefaultResolution = 120
)

// Plotter implements driven.ContourPlotter with gonum/plot.
type Plotter struct {
	Width    vg.Length
	Height   vg.Length
	BarWidth vg.Length

	// Resolution is the number of grid samples per axis.
	Resolution int
}

// NewPlotter creates a plotter with default image geometry.
func NewPlotter() *Plotter {
	return &Plotter{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		BarWidth:   DefaultBarWidth,
		Resolution: DefaultResolution,
	}
}

// Plot renders field to path as a PNG, overwriting any existing file.
func (p *Plotter) Plot(field *domain.ScalarField, opts domain.PlotOptions, path string) error {
	if err := field.Validate(); err != nil {
		return err
	}

	levels := opts.Levels
	if levels <= 0 {
		levels = domain.DefaultPlotLevels
	}
	levels = max(levels, 2)
	resolution := p.Resolution
	if resolution < 2 {
		resolution = DefaultResolution
	}

	lo, hi := field.Range()
	if lo == hi {
		lo, hi = bounds([]float64{lo})
	}

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(lo)
	cm.SetMax(hi)

	g := interpolate(field, resolution)

	chart := plot.New()
	chart.Title.Text = opts.Title
	chart.X.Label.Text = opts.XLabel
	chart.Y.Label.Text = opts.YLabel

	heat := plotter.NewHeatMap(g, cm.Palette(levels))
	heat.Min, heat.Max = lo, hi
	chart.Add(heat)

	if boundaries := contourLevels(lo, hi, levels); len(boundaries) > 0 {
		lines := plotter.NewContour(g, boundaries, monochrome{c: color.Black, n: len(boundaries)})
		lines.Min, lines.Max = lo, hi
		chart.Add(lines)
	}

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: levels})
	bar.HideX()
	bar.Y.Label.Text = opts.ColorLabel
	bar.Y.Padding = 0

	img := vgimg.New(p.Width, p.Height)
	dc := draw.New(img)
	chart.Draw(draw.Crop(dc, 0, -p.BarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, p.Width-p.BarWidth, 0, 0, 0))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write plot: %w", err)
	}
	return f.Close()
}

// contourLevels returns the interior boundaries between levels equal bands.
func contourLevels(lo, hi float64, levels int) []float64 {
	if levels < 2 {
		return nil
	}
	out := make([]float64, 0, levels-1)
	step := (hi - lo) / float64(levels)
	for i := 1; i < levels; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}

// monochrome is a palette of n copies of one colour.
type monochrome struct {
	c color.Color
	n int
}

var _ palette.Palette = monochrome{}

// Colors implements palette.Palette.
func (m monochrome) Colors() []color.Color {
	out := make([]color.Color, m.n)
	for i := range out {
		out[i] = m.c
	}
	return out
}
