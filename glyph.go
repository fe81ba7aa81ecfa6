package fontpens

import (
	"fmt"
	"maps"

	"seehuhn.de/go/geom/matrix"
)

var _ PointPen = (*Glyph)(nil)
var _ EditableGlyph = (*Glyph)(nil)
var _ PointDrawer = (*Glyph)(nil)
var _ IdentifierConflictSkipper = (*Glyph)(nil)

// Glyph is an in-memory glyph outline. It is a [PointPen] that stores what
// is drawn into it, and it can draw itself into other pens.
//
// Contours, points and components share one namespace of identifiers, and no
// identifier may be used twice. Adding a duplicate panics with a
// [*PenError], unless SkipConflictingIdentifiers is set, in which case the
// duplicate identifier is silently dropped.
type Glyph struct {
	Name  string
	Width float64

	SkipConflictingIdentifiers bool

	data        DataPointPen
	identifiers map[string]struct{}
}

// NewGlyph returns an empty glyph.
func NewGlyph(name string, width float64) *Glyph {
	return &Glyph{Name: name, Width: width}
}

// Contours returns the contours of the glyph. The result must not be
// modified.
func (g *Glyph) Contours() []Contour { return g.data.Contours }

// Components returns the components of the glyph. The result must not be
// modified.
func (g *Glyph) Components() []Component { return g.data.Components }

// Identifiers returns the set of identifiers in use.
func (g *Glyph) Identifiers() map[string]struct{} { return maps.Clone(g.identifiers) }

// SetSkipConflictingIdentifiers implements [IdentifierConflictSkipper].
func (g *Glyph) SetSkipConflictingIdentifiers(skip bool) {
	g.SkipConflictingIdentifiers = skip
}

// reserve claims identifier and returns it, or returns the empty string if
// it is taken and conflicts are skipped.
func (g *Glyph) reserve(op, identifier string) string {
	if identifier == "" {
		return ""
	}
	if _, ok := g.identifiers[identifier]; ok {
		if g.SkipConflictingIdentifiers {
			return ""
		}
		panic(penError(op, fmt.Sprintf("identifier %q is already in use", identifier)))
	}
	if g.identifiers == nil {
		g.identifiers = make(map[string]struct{})
	}
	g.identifiers[identifier] = struct{}{}
	return identifier
}

func (g *Glyph) BeginPath(identifier string) {
	if g.data.open {
		panic(penError("beginPath", "contour already open"))
	}
	g.data.BeginPath(g.reserve("beginPath", identifier))
}

func (g *Glyph) AddPoint(pt Point, info PointInfo) {
	if !g.data.open {
		panic(penError("addPoint", "no open contour"))
	}
	info.Identifier = g.reserve("addPoint", info.Identifier)
	g.data.AddPoint(pt, info)
}

func (g *Glyph) EndPath() {
	g.data.EndPath()
}

func (g *Glyph) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	if g.data.open {
		panic(penError("addComponent", "contour still open"))
	}
	g.data.AddComponent(baseGlyph, transform, g.reserve("addComponent", identifier))
}

// DrawPoints draws the glyph into pen: contours first, then components.
func (g *Glyph) DrawPoints(pen PointPen) {
	g.data.DrawPoints(pen)
}

// Draw draws the glyph into a segment pen.
func (g *Glyph) Draw(pen Pen) {
	g.data.Draw(pen)
}

// Pen returns a segment pen that draws into the glyph.
func (g *Glyph) Pen() Pen {
	return NewSegmentToPointPen(g)
}

// Clear removes all contours and components and releases their identifiers.
func (g *Glyph) Clear() {
	g.data.Clear()
	g.identifiers = nil
}
