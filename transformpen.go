package fontpens

import "seehuhn.de/go/geom/matrix"

func transformPoints(m matrix.Matrix, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(m)
	}
	return out
}

var _ Pen = (*TransformPen)(nil)

// TransformPen is a [Pen] filter that applies an affine transformation to
// all coordinates. Component transformations are composed with it, so that
// components end up where the transformed outline expects them.
type TransformPen struct {
	other Pen
	m     matrix.Matrix
}

// NewTransformPen returns a TransformPen that transforms by m and draws into
// other.
func NewTransformPen(other Pen, m matrix.Matrix) *TransformPen {
	return &TransformPen{other: other, m: m}
}

func (p *TransformPen) MoveTo(pt Point) { p.other.MoveTo(pt.Transform(p.m)) }
func (p *TransformPen) LineTo(pt Point) { p.other.LineTo(pt.Transform(p.m)) }

func (p *TransformPen) CurveTo(pts ...Point) {
	p.other.CurveTo(transformPoints(p.m, pts)...)
}

func (p *TransformPen) QCurveTo(pts ...Point) {
	p.other.QCurveTo(transformPoints(p.m, pts)...)
}

func (p *TransformPen) ClosePath() { p.other.ClosePath() }
func (p *TransformPen) EndPath()   { p.other.EndPath() }

func (p *TransformPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.other.AddComponent(baseGlyph, transform.Mul(p.m))
}

var _ PointPen = (*TransformPointPen)(nil)

// TransformPointPen is the [PointPen] counterpart of [TransformPen]. Point
// metadata is passed on unchanged.
type TransformPointPen struct {
	other PointPen
	m     matrix.Matrix
}

// NewTransformPointPen returns a TransformPointPen that transforms by m and
// draws into other.
func NewTransformPointPen(other PointPen, m matrix.Matrix) *TransformPointPen {
	return &TransformPointPen{other: other, m: m}
}

func (p *TransformPointPen) BeginPath(identifier string) { p.other.BeginPath(identifier) }
func (p *TransformPointPen) EndPath()                    { p.other.EndPath() }

func (p *TransformPointPen) AddPoint(pt Point, info PointInfo) {
	p.other.AddPoint(pt.Transform(p.m), info)
}

func (p *TransformPointPen) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	p.other.AddComponent(baseGlyph, transform.Mul(p.m), identifier)
}
