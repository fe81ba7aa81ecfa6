package fontpens

import (
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

var _ Pen = (*PrintPen)(nil)

// PrintPen is a [Pen] that writes every call it receives to a writer, one
// line per call, in the form
//
//	pen.moveTo((10, 10))
//	pen.curveTo((1, 1), (2, 2), (3, 3))
//	pen.addComponent("a", (1, 0, 0, 1, 10, 10))
type PrintPen struct {
	out tracer
}

// NewPrintPen returns a PrintPen writing to w.
func NewPrintPen(w io.Writer) *PrintPen {
	return &PrintPen{out: tracer{w: w}}
}

// Err returns the first error encountered while writing, if any.
func (p *PrintPen) Err() error { return p.out.err }

func (p *PrintPen) MoveTo(pt Point) {
	p.out.printf("pen.moveTo(%s)\n", pt)
}

func (p *PrintPen) LineTo(pt Point) {
	p.out.printf("pen.lineTo(%s)\n", pt)
}

func (p *PrintPen) CurveTo(pts ...Point) {
	p.out.printf("pen.curveTo(%s)\n", formatPoints(pts))
}

func (p *PrintPen) QCurveTo(pts ...Point) {
	p.out.printf("pen.qCurveTo(%s)\n", formatPoints(pts))
}

func (p *PrintPen) ClosePath() {
	p.out.printf("pen.closePath()\n")
}

func (p *PrintPen) EndPath() {
	p.out.printf("pen.endPath()\n")
}

func (p *PrintPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.out.printf("pen.addComponent(%q, %s)\n", baseGlyph, formatTransform(transform))
}

// tracer writes formatted lines and remembers the first write error. Once a
// write has failed, further output is dropped.
type tracer struct {
	w   io.Writer
	err error
}

func (t *tracer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func formatPoints(pts []Point) string {
	s := make([]string, len(pts))
	for i, pt := range pts {
		s[i] = pt.String()
	}
	return strings.Join(s, ", ")
}

func formatTransform(m matrix.Matrix) string {
	return fmt.Sprintf("(%g, %g, %g, %g, %g, %g)", m[0], m[1], m[2], m[3], m[4], m[5])
}
