package fontpens

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func spike(opts *SpikeOptions, draw func(pen Pen)) RecordingPen {
	var rec RecordingPen
	draw(NewSpikePen(&rec, opts))
	return rec
}

func contourPoints(rec RecordingPen) []Point {
	var pts []Point
	for _, op := range rec {
		switch op.Kind {
		case MoveToOp, LineToOp:
			pts = append(pts, op.Points[0])
		}
	}
	return pts
}

func drawPolyline(pen Pen) {
	pen.MoveTo(Pt(10, 0))
	pen.LineTo(Pt(30, 0))
	pen.LineTo(Pt(50, 0))
	pen.LineTo(Pt(70, 0))
	pen.LineTo(Pt(90, 0))
	pen.EndPath()
}

func TestSpikePenOpen(t *testing.T) {
	got := trace(func(pen Pen) { drawPolyline(NewSpikePen(pen, nil)) })
	want := lines(
		"pen.moveTo((10, 0))",
		"pen.lineTo((30, 0))",
		"pen.lineTo((50, -40))",
		"pen.lineTo((70, 0))",
		"pen.lineTo((90, 0))",
		"pen.endPath()",
	)
	diff(t, want, got)
}

func TestSpikePenPattern(t *testing.T) {
	var seen []int
	opts := &SpikeOptions{
		SpikeLength: 10,
		Pattern: func(i int, length float64) float64 {
			seen = append(seen, i)
			return -3 * length
		},
	}
	rec := spike(opts, drawPolyline)
	diff(t, []Point{Pt(10, 0), Pt(30, 0), Pt(50, 30), Pt(70, 0), Pt(90, 0)}, contourPoints(rec))
	diff(t, []int{2}, seen)
}

func TestSpikePenClosed(t *testing.T) {
	rec := spike(nil, func(pen Pen) {
		pen.MoveTo(Pt(0, 0))
		pen.LineTo(Pt(0, 100))
		pen.LineTo(Pt(100, 100))
		pen.LineTo(Pt(100, 0))
		pen.ClosePath()
	})
	d := 40 / math.Sqrt2
	want := []Point{Pt(d, d), Pt(0, 100), Pt(100-d, 100-d), Pt(100, 0)}
	diff(t, want, contourPoints(rec), cmpopts.EquateApprox(0, 1e-9))
	diff(t, ClosePathOp, rec[len(rec)-1].Kind)
}

func TestSpikePenMisuse(t *testing.T) {
	pen := NewSpikePen(&RecordingPen{}, nil)
	mustPanic(t, "lineTo", func() { pen.LineTo(Pt(0, 0)) })
	pen.MoveTo(Pt(0, 0))
	mustPanic(t, "curveTo", func() { pen.CurveTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)) })
	mustPanic(t, "qCurveTo", func() { pen.QCurveTo(Pt(1, 1), Pt(2, 2)) })
}

func TestSpikeGlyph(t *testing.T) {
	g := NewGlyph("testGlyph", 500)
	drawRect(g.Pen())
	if err := SpikeGlyph(g, nil); err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(128.2842712474619, 128.2842712474619),
		Pt(100, 120),
		Pt(140, 140),
		Pt(100, 160),
		Pt(140, 180),
		Pt(100, 200),
		Pt(140, 220),
		Pt(100, 240),
		Pt(140, 260),
		Pt(100, 280),
		Pt(128.2842712474619, 271.7157287525381),
		Pt(120, 300),
		Pt(140, 260),
		Pt(160, 300),
		Pt(180, 260),
		Pt(200, 300),
		Pt(220, 260),
		Pt(240, 300),
		Pt(260, 260),
		Pt(280, 300),
		Pt(271.7157287525381, 271.7157287525381),
		Pt(300, 280),
		Pt(260, 260),
		Pt(300, 240),
		Pt(260, 220),
		Pt(300, 200),
		Pt(260, 180),
		Pt(300, 160),
		Pt(260, 140),
		Pt(300, 120),
		Pt(271.7157287525381, 128.2842712474619),
		Pt(280, 100),
		Pt(260, 140),
		Pt(240, 100),
		Pt(220, 140),
		Pt(200, 100),
		Pt(180, 140),
		Pt(160, 100),
		Pt(140, 140),
		Pt(120, 100),
	}
	var rec RecordingPen
	g.Draw(&rec)
	diff(t, want, contourPoints(rec), cmpopts.EquateApprox(0, 1e-9))
	diff(t, ClosePathOp, rec[len(rec)-1].Kind)
	diff(t, "testGlyph", g.Name)
}

func TestSpikeFilterCurves(t *testing.T) {
	var rec RecordingPen
	pen, err := NewSpikeFilter(&rec, &SpikeOptions{SegmentLength: 10, SpikeLength: 5})
	if err != nil {
		t.Fatal(err)
	}
	pen.MoveTo(Pt(0, 0))
	pen.CurveTo(Pt(0, 100), Pt(100, 100), Pt(100, 0))
	pen.ClosePath()
	diff(t, 0, count(rec, CurveToOp))
	// The curve is about 199 units long and the closing line 100.
	diff(t, 29, count(rec, LineToOp))

	if _, err := NewSpikeFilter(&rec, &SpikeOptions{SegmentLength: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}
