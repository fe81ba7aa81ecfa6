package fontpens

import (
	"seehuhn.de/go/geom/matrix"
)

var _ PointPen = (*PointToSegmentPen)(nil)

// PointToSegmentPen is a [PointPen] that translates the contours it receives
// into calls on a segment [Pen].
//
// Closed contours are rotated so that they end on an on-curve point, which
// becomes the MoveTo point. The line segment that closes a contour is implied
// by ClosePath and only drawn if OutputImpliedClosingLine is set, or if it
// ends on the start point (which would otherwise be lost).
type PointToSegmentPen struct {
	pen                      Pen
	OutputImpliedClosingLine bool

	points []ContourPoint
	open   bool
}

// NewPointToSegmentPen returns a PointToSegmentPen drawing into pen.
func NewPointToSegmentPen(pen Pen) *PointToSegmentPen {
	return &PointToSegmentPen{pen: pen}
}

func (p *PointToSegmentPen) BeginPath(identifier string) {
	if p.open {
		panic(penError("beginPath", "contour already open"))
	}
	p.open = true
	p.points = p.points[:0]
}

func (p *PointToSegmentPen) AddPoint(pt Point, info PointInfo) {
	if !p.open {
		panic(penError("addPoint", "no open contour"))
	}
	p.points = append(p.points, ContourPoint{Pt: pt, Info: info})
}

func (p *PointToSegmentPen) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	if p.open {
		panic(penError("addComponent", "contour still open"))
	}
	p.pen.AddComponent(baseGlyph, transform)
}

type pointSegment struct {
	kind SegmentType
	pts  []Point
}

func (p *PointToSegmentPen) EndPath() {
	if !p.open {
		panic(penError("endPath", "no open contour"))
	}
	p.open = false
	points := p.points
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p.pen.MoveTo(points[0].Pt)
		p.pen.EndPath()
		return
	}

	var segments []pointSegment
	closed := true
	var movePt Point
	if points[0].Info.SegmentType == SegmentMove {
		closed = false
		movePt = points[0].Pt
		points = points[1:]
	} else {
		firstOnCurve := -1
		for i, pt := range points {
			if pt.Info.SegmentType != SegmentOffCurve {
				firstOnCurve = i
				break
			}
		}
		if firstOnCurve == -1 {
			// A quadratic contour without on-curve points. Start it at the
			// on-curve point implied between the last and first point.
			implied := points[len(points)-1].Pt.Midpoint(points[0].Pt)
			pts := make([]Point, 0, len(points)+1)
			for _, pt := range points {
				pts = append(pts, pt.Pt)
			}
			p.pen.MoveTo(implied)
			p.pen.QCurveTo(append(pts, implied)...)
			p.pen.ClosePath()
			return
		}
		rotated := make([]ContourPoint, 0, len(points))
		rotated = append(rotated, points[firstOnCurve+1:]...)
		points = append(rotated, points[:firstOnCurve+1]...)
		movePt = points[len(points)-1].Pt
	}

	var current []Point
	for _, pt := range points {
		current = append(current, pt.Pt)
		if pt.Info.SegmentType == SegmentOffCurve {
			continue
		}
		segments = append(segments, pointSegment{kind: pt.Info.SegmentType, pts: current})
		current = nil
	}
	if len(current) != 0 {
		panic(penError("endPath", "open contour ends with off-curve points"))
	}

	pen := p.pen
	pen.MoveTo(movePt)
	lastPt := movePt
	for i, seg := range segments {
		switch seg.kind {
		case SegmentLine:
			if len(seg.pts) != 1 {
				panic(penError("endPath", "line segment with off-curve points"))
			}
			pt := seg.pts[0]
			if i+1 != len(segments) || p.OutputImpliedClosingLine || !closed || pt == lastPt {
				pen.LineTo(pt)
				lastPt = pt
			}
		case SegmentCurve:
			pen.CurveTo(seg.pts...)
			lastPt = seg.pts[len(seg.pts)-1]
		case SegmentQCurve:
			pen.QCurveTo(seg.pts...)
			lastPt = seg.pts[len(seg.pts)-1]
		default:
			panic(penError("endPath", "illegal segment type "+string(seg.kind)))
		}
	}
	if closed {
		pen.ClosePath()
	} else {
		pen.EndPath()
	}
}

var _ Pen = (*SegmentToPointPen)(nil)

// SegmentToPointPen is a [Pen] that translates the segments it receives into
// calls on a [PointPen].
//
// A closed contour whose last point coincides with its first one has the
// duplicate removed; otherwise the first point becomes a line point for the
// implied closing line.
type SegmentToPointPen struct {
	pen     PointPen
	contour []ContourPoint
	open    bool
}

// NewSegmentToPointPen returns a SegmentToPointPen drawing into pen.
func NewSegmentToPointPen(pen PointPen) *SegmentToPointPen {
	return &SegmentToPointPen{pen: pen}
}

func (p *SegmentToPointPen) add(pt Point, kind SegmentType) {
	p.contour = append(p.contour, ContourPoint{Pt: pt, Info: PointInfo{SegmentType: kind}})
}

func (p *SegmentToPointPen) requireContour(op string) {
	if !p.open {
		panic(penError(op, "contour missing required initial moveTo"))
	}
}

func (p *SegmentToPointPen) MoveTo(pt Point) {
	p.contour = p.contour[:0]
	p.open = true
	p.add(pt, SegmentMove)
}

func (p *SegmentToPointPen) LineTo(pt Point) {
	p.requireContour("lineTo")
	p.add(pt, SegmentLine)
}

func (p *SegmentToPointPen) CurveTo(pts ...Point) {
	p.curve("curveTo", SegmentCurve, pts)
}

func (p *SegmentToPointPen) QCurveTo(pts ...Point) {
	p.curve("qCurveTo", SegmentQCurve, pts)
}

func (p *SegmentToPointPen) curve(op string, kind SegmentType, pts []Point) {
	if len(pts) == 0 {
		panic(penError(op, "must pass at least one point"))
	}
	p.requireContour(op)
	for _, pt := range pts[:len(pts)-1] {
		p.add(pt, SegmentOffCurve)
	}
	p.add(pts[len(pts)-1], kind)
}

func (p *SegmentToPointPen) ClosePath() {
	p.requireContour("closePath")
	c := p.contour
	if len(c) > 1 && c[0].Pt == c[len(c)-1].Pt {
		c[0] = c[len(c)-1]
		p.contour = c[:len(c)-1]
	} else if c[0].Info.SegmentType == SegmentMove {
		c[0].Info.SegmentType = SegmentLine
	}
	p.flush()
}

func (p *SegmentToPointPen) EndPath() {
	p.requireContour("endPath")
	p.flush()
}

func (p *SegmentToPointPen) flush() {
	p.pen.BeginPath("")
	for _, pt := range p.contour {
		p.pen.AddPoint(pt.Pt, pt.Info)
	}
	p.pen.EndPath()
	p.contour = p.contour[:0]
	p.open = false
}

func (p *SegmentToPointPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	if p.open {
		panic(penError("addComponent", "components must be added before or after contours"))
	}
	p.pen.AddComponent(baseGlyph, transform, "")
}
