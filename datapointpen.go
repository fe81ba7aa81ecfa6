package fontpens

import (
	"maps"

	"seehuhn.de/go/geom/matrix"
)

// ContourPoint is a point of a recorded contour together with its metadata.
type ContourPoint struct {
	Pt   Point
	Info PointInfo
}

// Contour is a recorded point pen contour.
type Contour struct {
	Identifier string
	Points     []ContourPoint
}

// Component is a placed reference to another glyph.
type Component struct {
	BaseGlyph  string
	Transform  matrix.Matrix
	Identifier string
}

var _ PointPen = (*DataPointPen)(nil)
var _ PointDrawer = (*DataPointPen)(nil)
var _ Drawer = (*DataPointPen)(nil)

// DataPointPen is a [PointPen] that collects all data it receives and can
// draw it back into another pen, with every argument and all point metadata
// preserved.
//
// Contours are replayed before components, each group in the order it was
// recorded.
type DataPointPen struct {
	Contours   []Contour
	Components []Component

	open bool
}

func (p *DataPointPen) BeginPath(identifier string) {
	if p.open {
		panic(penError("beginPath", "contour already open"))
	}
	p.open = true
	p.Contours = append(p.Contours, Contour{Identifier: identifier})
}

func (p *DataPointPen) AddPoint(pt Point, info PointInfo) {
	if !p.open {
		panic(penError("addPoint", "no open contour"))
	}
	info.Extra = maps.Clone(info.Extra)
	c := &p.Contours[len(p.Contours)-1]
	c.Points = append(c.Points, ContourPoint{Pt: pt, Info: info})
}

func (p *DataPointPen) EndPath() {
	if !p.open {
		panic(penError("endPath", "no open contour"))
	}
	p.open = false
}

func (p *DataPointPen) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	if p.open {
		panic(penError("addComponent", "contour still open"))
	}
	p.Components = append(p.Components, Component{
		BaseGlyph:  baseGlyph,
		Transform:  transform,
		Identifier: identifier,
	})
}

// DrawPoints replays the recorded data into pen. If pen implements
// [IdentifierConflictSkipper], it is told to skip conflicting identifiers
// first.
func (p *DataPointPen) DrawPoints(pen PointPen) {
	if s, ok := pen.(IdentifierConflictSkipper); ok {
		s.SetSkipConflictingIdentifiers(true)
	}
	for _, c := range p.Contours {
		pen.BeginPath(c.Identifier)
		for _, pt := range c.Points {
			pen.AddPoint(pt.Pt, pt.Info)
		}
		pen.EndPath()
	}
	for _, c := range p.Components {
		pen.AddComponent(c.BaseGlyph, c.Transform, c.Identifier)
	}
}

// Draw replays the recorded data into a segment pen.
func (p *DataPointPen) Draw(pen Pen) {
	p.DrawPoints(NewPointToSegmentPen(pen))
}

// Clear drops all recorded data.
func (p *DataPointPen) Clear() {
	p.Contours = nil
	p.Components = nil
	p.open = false
}
