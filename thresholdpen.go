package fontpens

import "seehuhn.de/go/geom/matrix"

// DefaultThreshold is the threshold used by [ThresholdGlyph] when none is
// given.
const DefaultThreshold = 10

var _ Pen = (*ThresholdPen)(nil)

// ThresholdPen is a [Pen] filter that only passes on segments whose end point
// is at least Threshold away from the end of the last segment it passed on.
type ThresholdPen struct {
	other     Pen
	Threshold float64

	last      Point
	inContour bool
}

// NewThresholdPen returns a ThresholdPen drawing into other.
func NewThresholdPen(other Pen, threshold float64) *ThresholdPen {
	return &ThresholdPen{other: other, Threshold: threshold}
}

func (p *ThresholdPen) keep(op string, end Point) bool {
	if !p.inContour {
		panic(penError(op, "no current point"))
	}
	if end.Distance(p.last) < p.Threshold {
		return false
	}
	p.last = end
	return true
}

func (p *ThresholdPen) MoveTo(pt Point) {
	p.last = pt
	p.inContour = true
	p.other.MoveTo(pt)
}

func (p *ThresholdPen) LineTo(pt Point) {
	if p.keep("lineTo", pt) {
		p.other.LineTo(pt)
	}
}

func (p *ThresholdPen) CurveTo(pts ...Point) {
	if len(pts) == 0 {
		panic(penError("curveTo", "must pass at least one point"))
	}
	if p.keep("curveTo", pts[len(pts)-1]) {
		p.other.CurveTo(pts...)
	}
}

func (p *ThresholdPen) QCurveTo(pts ...Point) {
	if len(pts) == 0 {
		panic(penError("qCurveTo", "must pass at least one point"))
	}
	if p.keep("qCurveTo", pts[len(pts)-1]) {
		p.other.QCurveTo(pts...)
	}
}

func (p *ThresholdPen) ClosePath() {
	p.inContour = false
	p.other.ClosePath()
}

func (p *ThresholdPen) EndPath() {
	p.inContour = false
	p.other.EndPath()
}

func (p *ThresholdPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.other.AddComponent(baseGlyph, transform)
}

// ThresholdGlyph redraws g in place through a [ThresholdPen], dropping
// segments shorter than threshold.
func ThresholdGlyph(g EditableGlyph, threshold float64) {
	var rec RecordingPen
	g.Draw(NewThresholdPen(&rec, threshold))
	g.Clear()
	rec.Replay(g.Pen())
}
