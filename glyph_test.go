package fontpens

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestGlyphPen(t *testing.T) {
	g := NewGlyph("testGlyph", 500)
	drawRect(g.Pen())
	g.Pen().AddComponent("b", matrix.Identity)

	diff(t, trace(func(pen Pen) {
		drawRect(pen)
		pen.AddComponent("b", matrix.Identity)
	}), trace(g.Draw))

	diff(t, 1, len(g.Contours()))
	diff(t, 1, len(g.Components()))

	g.Clear()
	diff(t, "", trace(g.Draw))
	diff(t, "testGlyph", g.Name)
	diff(t, 500.0, g.Width)
}

func TestGlyphIdentifiers(t *testing.T) {
	g := NewGlyph("a", 0)
	g.BeginPath("id1")
	g.AddPoint(Pt(0, 0), PointInfo{SegmentType: SegmentMove, Identifier: "id2"})
	mustPanic(t, "addPoint", func() {
		g.AddPoint(Pt(1, 1), PointInfo{SegmentType: SegmentLine, Identifier: "id1"})
	})
	g.EndPath()
	mustPanic(t, "beginPath", func() { g.BeginPath("id2") })
	mustPanic(t, "addComponent", func() { g.AddComponent("b", matrix.Identity, "id1") })
	diff(t, map[string]struct{}{"id1": {}, "id2": {}}, g.Identifiers())

	g.SetSkipConflictingIdentifiers(true)
	g.BeginPath("id1")
	g.AddPoint(Pt(1, 1), PointInfo{SegmentType: SegmentMove, Identifier: "id2"})
	g.EndPath()
	g.AddComponent("b", matrix.Identity, "id3")

	want := []Contour{
		{Identifier: "id1", Points: []ContourPoint{{Pt: Pt(0, 0), Info: PointInfo{SegmentType: SegmentMove, Identifier: "id2"}}}},
		{Identifier: "", Points: []ContourPoint{{Pt: Pt(1, 1), Info: PointInfo{SegmentType: SegmentMove}}}},
	}
	diff(t, want, g.Contours())
	diff(t, []Component{{BaseGlyph: "b", Transform: matrix.Identity, Identifier: "id3"}}, g.Components())

	g.Clear()
	diff(t, map[string]struct{}(nil), g.Identifiers())
	g.SetSkipConflictingIdentifiers(false)
	g.BeginPath("id1")
	g.EndPath()
}

func TestGlyphMisuse(t *testing.T) {
	g := NewGlyph("a", 0)
	mustPanic(t, "addPoint", func() { g.AddPoint(Pt(0, 0), PointInfo{}) })
	mustPanic(t, "endPath", func() { g.EndPath() })
	g.BeginPath("")
	mustPanic(t, "beginPath", func() { g.BeginPath("") })
	mustPanic(t, "addComponent", func() { g.AddComponent("b", matrix.Identity, "") })
}
