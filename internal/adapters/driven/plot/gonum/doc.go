// Package gonum renders scalar fields as filled contour images using gonum/plot.
//
// Scattered samples are first interpolated onto a regular grid by inverse
// distance weighting. The grid is drawn as a heat map with contour lines
// overlaid, next to a vertical colour bar, and saved as PNG.
package gonum
