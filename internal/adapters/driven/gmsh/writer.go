package gmsh

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.GeometryWriter = (*Writer)(nil)

// Header is the first line of every rendered file.
const Header = "// Gmsh .geo file for a simplified 2D FINFET"

// Writer renders geometry descriptions as .geo text.
type Writer struct{}

// NewWriter creates a new .geo writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render writes the description to w.
func (g *Writer) Render(w io.Writer, desc *domain.GeometryDescription) error {
	if desc == nil {
		return fmt.Errorf("%w: nil geometry description", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	render(&buf, desc)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write geometry: %w", err)
	}
	return nil
}

// WriteFile renders the description to path, overwriting any existing file.
func (g *Writer) WriteFile(path string, desc *domain.GeometryDescription) error {
	if desc == nil {
		return fmt.Errorf("%w: nil geometry description", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	render(&buf, desc)

	//nolint:gosec // G306: geometry files are meant to be read by other tools
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func render(buf *bytes.Buffer, desc *domain.GeometryDescription) {
	p := desc.Parameters

	buf.WriteString(Header + "\n\n")

	buf.WriteString("// Device dimensions (in meters)\n")
	for _, f := range p.Fields() {
		fmt.Fprintf(buf, "%s = %s;\n", f.Name, num(f.Value))
	}
	buf.WriteString("channel_length = gate_length;\n")

	buf.WriteString("\n// Points\n")
	for _, pt := range desc.Points {
		fmt.Fprintf(buf, "Point(%d) = {%s, %s, %s, %s};\n",
			pt.ID, num(pt.X), num(pt.Y), num(pt.Z), num(pt.MeshSize))
	}

	buf.WriteString("\n// Lines\n")
	for _, ln := range desc.Lines {
		fmt.Fprintf(buf, "Line(%d) = {%d, %d};%s\n", ln.ID, ln.Start, ln.End, trailing(ln.Label))
	}

	buf.WriteString("\n// Surfaces\n")
	for _, loop := range desc.Loops {
		fmt.Fprintf(buf, "Curve Loop(%d) = {%s};\n", loop.ID, ids(loop.Lines))
	}
	for _, s := range desc.Surfaces {
		fmt.Fprintf(buf, "Plane Surface(%d) = {%d};\n", s.ID, s.Loop)
	}

	buf.WriteString("\n// Physical groups\n")
	for _, pg := range desc.Physicals {
		keyword := "Physical Surface"
		if pg.Kind == domain.PhysicalLine {
			keyword = "Physical Line"
		}
		fmt.Fprintf(buf, "%s(%q) = {%s};%s\n", keyword, pg.Name, ids(pg.Entities), trailing(pg.Label))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func ids(v []int) string {
	parts := make([]string, len(v))
	for i, id := range v {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func trailing(label string) string {
	if label == "" {
		return ""
	}
	return " // " + label
}
