package fontpens

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// FlattenOptions configures a [FlattenPen].
type FlattenOptions struct {
	// ApproximateSegmentLength is the length the emitted line segments aim
	// for. Zero means 5.
	ApproximateSegmentLength float64
	// SegmentLines also splits straight lines into pieces of roughly
	// ApproximateSegmentLength.
	SegmentLines bool
	// KeepDoubles passes on line segments of zero length. By default they
	// are dropped.
	KeepDoubles bool
}

var _ Pen = (*FlattenPen)(nil)

// FlattenPen is a [Pen] filter that replaces all curves with line segments of
// roughly equal length and passes the result on to another pen.
//
// Closing a contour first draws a line back to its start point, so the
// flattened contour ends where it started.
type FlattenPen struct {
	other      Pen
	segmentLen float64
	opts       FlattenOptions

	current   Point
	first     Point
	inContour bool
}

// NewFlattenPen returns a FlattenPen drawing into other. It fails if the
// approximate segment length is negative.
func NewFlattenPen(other Pen, opts FlattenOptions) (*FlattenPen, error) {
	segmentLen := opts.ApproximateSegmentLength
	if segmentLen == 0 {
		segmentLen = 5
	}
	if !(segmentLen > 0) {
		return nil, fmt.Errorf("fontpens: segment length %g: %w", opts.ApproximateSegmentLength, ErrInvalidArgument)
	}
	return &FlattenPen{other: other, segmentLen: segmentLen, opts: opts}, nil
}

// steps returns the number of pieces a segment of the given length is split
// into. Halfway cases round to even.
func (p *FlattenPen) steps(length float64) int {
	return int(math.RoundToEven(length / p.segmentLen))
}

func (p *FlattenPen) requireContour(op string) {
	if !p.inContour {
		panic(penError(op, "no current point"))
	}
}

func (p *FlattenPen) MoveTo(pt Point) {
	p.other.MoveTo(pt)
	p.current = pt
	p.first = pt
	p.inContour = true
}

func (p *FlattenPen) LineTo(pt Point) {
	p.requireContour("lineTo")
	p.lineTo(pt)
}

func (p *FlattenPen) lineTo(pt Point) {
	if !p.opts.KeepDoubles && pt == p.current {
		return
	}
	if !p.opts.SegmentLines {
		p.emit(pt)
		return
	}
	n := p.steps(p.current.Distance(pt))
	if n < 1 {
		p.emit(pt)
		return
	}
	for i := 1; i < n; i++ {
		p.other.LineTo(p.current.Lerp(pt, float64(i)/float64(n)))
	}
	p.emit(pt)
}

func (p *FlattenPen) emit(pt Point) {
	p.other.LineTo(pt)
	p.current = pt
}

func (p *FlattenPen) quadTo(p1, p2 Point) {
	// A control point on just one end still spaces the samples unevenly.
	if p1 == p.current && p1 == p2 {
		p.lineTo(p2)
		return
	}
	q := QuadBez{p.current, p1, p2}
	p.sample(q.Eval, sampledLength(q.Eval, DefaultPrecision), p2)
}

func (p *FlattenPen) cubicTo(p1, p2, p3 Point) {
	if p1 == p.current && p2 == p3 {
		p.lineTo(p3)
		return
	}
	c := CubicBez{p.current, p1, p2, p3}
	p.sample(c.Eval, sampledLength(c.Eval, DefaultPrecision), p3)
}

func (p *FlattenPen) sample(eval func(float64) Point, length float64, end Point) {
	n := p.steps(length)
	if n < 1 {
		p.emit(end)
		return
	}
	// The last piece ends exactly on the end point.
	for i := 1; i < n; i++ {
		p.other.LineTo(eval(float64(i) / float64(n)))
	}
	p.emit(end)
}

func (p *FlattenPen) CurveTo(pts ...Point) {
	p.requireContour("curveTo")
	splitCurveTo("curveTo", pts, p)
}

func (p *FlattenPen) QCurveTo(pts ...Point) {
	p.requireContour("qCurveTo")
	splitQCurveTo("qCurveTo", pts, p)
}

func (p *FlattenPen) ClosePath() {
	p.requireContour("closePath")
	p.lineTo(p.first)
	p.other.ClosePath()
	p.inContour = false
}

func (p *FlattenPen) EndPath() {
	p.requireContour("endPath")
	p.other.EndPath()
	p.inContour = false
}

func (p *FlattenPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.other.AddComponent(baseGlyph, transform)
}
