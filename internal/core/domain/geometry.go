package domain

// Physical group names for material regions and boundary contacts.
const (
	RegionFin       = "fin"
	RegionGateOxide = "gate_oxide"
	RegionGate      = "gate"

	ContactSource = "source_contact"
	ContactDrain  = "drain_contact"
	ContactGate   = "gate_contact"
)

// PhysicalKind distinguishes surface (region) tags from line (contact) tags.
type PhysicalKind string

// Physical group kinds.
const (
	PhysicalSurface PhysicalKind = "surface"
	PhysicalLine    PhysicalKind = "line"
)

// Point is a geometry vertex with a target mesh element size.
type Point struct {
	ID       int
	X, Y, Z  float64
	MeshSize float64
}

// Line is a straight segment between two points.
type Line struct {
	ID    int
	Start int
	End   int

	// Label is a short human-readable role, e.g. "Source bottom".
	Label string
}

// CurveLoop is a closed, ordered sequence of lines.
type CurveLoop struct {
	ID    int
	Lines []int
}

// PlaneSurface is a planar surface bounded by a curve loop.
type PlaneSurface struct {
	ID   int
	Loop int
}

// PhysicalGroup tags surfaces or lines with a name for later solver use.
type PhysicalGroup struct {
	Kind     PhysicalKind
	Name     string
	Entities []int

	// Label is a short human-readable role, e.g. "Gate top line".
	Label string
}

// GeometryDescription is the ordered set of declarations describing the device.
// It is derived deterministically from DeviceParameters and never mutated.
type GeometryDescription struct {
	Parameters DeviceParameters
	Points     []Point
	Lines      []Line
	Loops      []CurveLoop
	Surfaces   []PlaneSurface
	Physicals  []PhysicalGroup
}

// Physical returns the physical group with the given kind and name.
func (g *GeometryDescription) Physical(kind PhysicalKind, name string) (PhysicalGroup, bool) {
	for _, pg := range g.Physicals {
		if pg.Kind == kind && pg.Name == name {
			return pg, true
		}
	}
	return PhysicalGroup{}, false
}

// PointByID returns the point with the given id.
func (g *GeometryDescription) PointByID(id int) (Point, bool) {
	for _, pt := range g.Points {
		if pt.ID == id {
			return pt, true
		}
	}
	return Point{}, false
}

// LineByID returns the line with the given id.
func (g *GeometryDescription) LineByID(id int) (Line, bool) {
	for _, ln := range g.Lines {
		if ln.ID == id {
			return ln, true
		}
	}
	return Line{}, false
}

// NewFinFETGeometry builds the three-region stacked FinFET cross-section.
//
// The topology is fixed; only coordinates scale with p:
//
//	points 1-8   fin corners and source/channel/drain boundaries
//	points 9-12  gate oxide over the channel
//	points 13-16 gate over the oxide, as tall as the fin
//
// The oxide and gate rectangles repeat the shared corner points instead of
// reusing ids, so each region's loop is self-contained.
func NewFinFETGeometry(p DeviceParameters) *GeometryDescription {
	sd := p.SourceDrainLength
	ch := p.ChannelLength()
	x0, x1, x2, x3 := 0.0, sd, sd+ch, sd+ch+sd

	finTop := p.FinHeight
	oxideTop := p.FinHeight + p.OxideThickness
	gateTop := p.FinHeight + p.OxideThickness + p.FinHeight

	g := &GeometryDescription{Parameters: p}

	pt := func(id int, x, y float64) {
		g.Points = append(g.Points, Point{ID: id, X: x, Y: y, Z: 0, MeshSize: DefaultMeshSize})
	}
	ln := func(id, start, end int, label string) {
		g.Lines = append(g.Lines, Line{ID: id, Start: start, End: end, Label: label})
	}
	region := func(id int, lines []int, name string) {
		g.Loops = append(g.Loops, CurveLoop{ID: id, Lines: lines})
		g.Surfaces = append(g.Surfaces, PlaneSurface{ID: id, Loop: id})
		g.Physicals = append(g.Physicals, PhysicalGroup{Kind: PhysicalSurface, Name: name, Entities: []int{id}})
	}

	// Fin
	pt(1, x0, 0)
	pt(2, x1, 0)
	pt(3, x2, 0)
	pt(4, x3, 0)
	pt(5, x0, finTop)
	pt(6, x1, finTop)
	pt(7, x2, finTop)
	pt(8, x3, finTop)

	ln(1, 1, 2, "Source bottom")
	ln(2, 2, 3, "Channel bottom")
	ln(3, 3, 4, "Drain bottom")
	ln(4, 4, 8, "Drain right")
	ln(5, 8, 7, "Drain top")
	ln(6, 7, 6, "Channel top")
	ln(7, 6, 5, "Source top")
	ln(8, 5, 1, "Source left")
	region(1, []int{1, 2, 3, 4, 5, 6, 7, 8}, RegionFin)

	// Gate oxide
	pt(9, x1, finTop)
	pt(10, x2, finTop)
	pt(11, x1, oxideTop)
	pt(12, x2, oxideTop)

	ln(9, 9, 10, "Oxide bottom (fin top)")
	ln(10, 10, 12, "Oxide right")
	ln(11, 12, 11, "Oxide top")
	ln(12, 11, 9, "Oxide left")
	region(2, []int{9, 10, 11, 12}, RegionGateOxide)

	// Gate
	pt(13, x1, oxideTop)
	pt(14, x2, oxideTop)
	pt(15, x1, gateTop)
	pt(16, x2, gateTop)

	ln(13, 13, 14, "Gate bottom (oxide top)")
	ln(14, 14, 16, "Gate right")
	ln(15, 16, 15, "Gate top")
	ln(16, 15, 13, "Gate left")
	region(3, []int{13, 14, 15, 16}, RegionGate)

	// Contacts
	g.Physicals = append(g.Physicals,
		PhysicalGroup{Kind: PhysicalLine, Name: ContactSource, Entities: []int{1}, Label: "Source bottom line"},
		PhysicalGroup{Kind: PhysicalLine, Name: ContactDrain, Entities: []int{3}, Label: "Drain bottom line"},
		PhysicalGroup{Kind: PhysicalLine, Name: ContactGate, Entities: []int{15}, Label: "Gate top line"},
	)

	return g
}
