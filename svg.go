package fontpens

import (
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// SVGOptions specifies optional settings for [SVGPen] and [SVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

var _ Pen = (*SVGPen)(nil)

// SVGPen is a [Pen] that writes the outline drawn into it as SVG path data.
// Coordinates are written as they are; glyph space has y pointing up, so
// callers usually flip the path with a transform attribute. Components are
// ignored.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
type SVGPen struct {
	w     io.Writer
	opts  SVGOptions
	err   error
	first bool

	inContour bool
}

// NewSVGPen returns an SVGPen writing to w.
func NewSVGPen(w io.Writer, opts SVGOptions) *SVGPen {
	return &SVGPen{w: w, opts: opts, first: true}
}

// SVG draws d into an [SVGPen] and returns the path data.
func SVG(d Drawer, opts SVGOptions) string {
	sb := &strings.Builder{}
	d.Draw(NewSVGPen(sb, opts))
	return sb.String()
}

// Err returns the first error encountered while writing, if any.
func (p *SVGPen) Err() error { return p.err }

func (p *SVGPen) write(s string) {
	if p.err != nil {
		return
	}
	if !p.first {
		s = " " + s
	}
	p.first = false
	_, p.err = io.WriteString(p.w, s)
}

func (p *SVGPen) format(n float64) string {
	maxPrec := p.opts.MaxPrecision
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func (p *SVGPen) coords(pts ...Point) string {
	s := make([]string, len(pts))
	for i, pt := range pts {
		s[i] = p.format(pt.X) + "," + p.format(pt.Y)
	}
	return strings.Join(s, " ")
}

func (p *SVGPen) requireContour(op string) {
	if !p.inContour {
		panic(penError(op, "no current point"))
	}
}

func (p *SVGPen) MoveTo(pt Point) {
	p.inContour = true
	p.write("M" + p.coords(pt))
}

func (p *SVGPen) LineTo(pt Point) {
	p.requireContour("lineTo")
	p.lineTo(pt)
}

func (p *SVGPen) lineTo(pt Point)          { p.write("L" + p.coords(pt)) }
func (p *SVGPen) quadTo(p1, p2 Point)      { p.write("Q" + p.coords(p1, p2)) }
func (p *SVGPen) cubicTo(p1, p2, p3 Point) { p.write("C" + p.coords(p1, p2, p3)) }

func (p *SVGPen) CurveTo(pts ...Point) {
	p.requireContour("curveTo")
	splitCurveTo("curveTo", pts, p)
}

func (p *SVGPen) QCurveTo(pts ...Point) {
	p.requireContour("qCurveTo")
	splitQCurveTo("qCurveTo", pts, p)
}

func (p *SVGPen) ClosePath() {
	p.requireContour("closePath")
	p.inContour = false
	p.write("Z")
}

func (p *SVGPen) EndPath() {
	p.requireContour("endPath")
	p.inContour = false
}

func (p *SVGPen) AddComponent(baseGlyph string, transform matrix.Matrix) {}
