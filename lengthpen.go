package fontpens

import "seehuhn.de/go/geom/matrix"

var _ Pen = (*LengthPen)(nil)

// LengthPen is a [Pen] that measures the outline drawn into it.
//
// Lines are measured exactly, quadratic segments with [QuadBez.Length] and
// cubic segments with [CubicBez.EstimateLength]. Closing a contour adds the
// length of the implied line back to its start point. Components are
// ignored.
//
// The zero value is ready to use and samples with [DefaultPrecision].
type LengthPen struct {
	// Length is the total length of all contours drawn so far.
	Length float64
	// Contours holds the length of each finished contour.
	Contours []float64

	precision int
	current   Point
	first     Point
	contour   float64
	inContour bool
}

// NewLengthPen returns a LengthPen whose estimates use the given sampling
// precision. It fails if precision is less than 1.
func NewLengthPen(precision int) (*LengthPen, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	return &LengthPen{precision: precision}, nil
}

func (p *LengthPen) sampling() int {
	if p.precision == 0 {
		return DefaultPrecision
	}
	return p.precision
}

func (p *LengthPen) requireContour(op string) {
	if !p.inContour {
		panic(penError(op, "no current point"))
	}
}

func (p *LengthPen) MoveTo(pt Point) {
	if p.inContour {
		p.finish()
	}
	p.current = pt
	p.first = pt
	p.inContour = true
}

func (p *LengthPen) LineTo(pt Point) {
	p.requireContour("lineTo")
	p.lineTo(pt)
}

func (p *LengthPen) lineTo(pt Point) {
	p.contour += p.current.Distance(pt)
	p.current = pt
}

func (p *LengthPen) quadTo(p1, p2 Point) {
	// The precision is either checked by NewLengthPen or the default.
	l, _ := QuadBez{p.current, p1, p2}.Length(p.sampling())
	p.contour += l
	p.current = p2
}

func (p *LengthPen) cubicTo(p1, p2, p3 Point) {
	l, _ := CubicBez{p.current, p1, p2, p3}.EstimateLength(p.sampling())
	p.contour += l
	p.current = p3
}

func (p *LengthPen) CurveTo(pts ...Point) {
	p.requireContour("curveTo")
	splitCurveTo("curveTo", pts, p)
}

func (p *LengthPen) QCurveTo(pts ...Point) {
	p.requireContour("qCurveTo")
	splitQCurveTo("qCurveTo", pts, p)
}

func (p *LengthPen) ClosePath() {
	p.requireContour("closePath")
	p.lineTo(p.first)
	p.finish()
}

func (p *LengthPen) EndPath() {
	p.requireContour("endPath")
	p.finish()
}

func (p *LengthPen) finish() {
	p.Contours = append(p.Contours, p.contour)
	p.Length += p.contour
	p.contour = 0
	p.inContour = false
}

func (p *LengthPen) AddComponent(baseGlyph string, transform matrix.Matrix) {}
