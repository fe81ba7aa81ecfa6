// Package fontpens provides pens for glyph outlines: small adapters that
// receive an outline one drawing call at a time and record, print,
// transform, measure or distort it.
//
// # Pens and point pens
//
// Outlines are described through two protocols. A [Pen] receives segments:
// [Pen.MoveTo] starts a contour, [Pen.LineTo], [Pen.CurveTo] and
// [Pen.QCurveTo] extend it, and [Pen.ClosePath] or [Pen.EndPath] finish it. A
// [PointPen] receives the points of a contour instead, each with a
// [PointInfo] describing its role. Both protocols place components, which
// are references to other glyphs, with [seehuhn.de/go/geom/matrix.Matrix]
// transformations.
//
// [PointToSegmentPen] and [SegmentToPointPen] convert between the two.
// Outlines that can draw themselves implement [Drawer] or [PointDrawer].
//
// Misusing a pen, for example by adding a point outside of a contour, is a
// programming error and panics with a [*PenError].
//
// # Pens
//
// This package includes the following pens:
//   - [PrintPen] and [PrintPointPen] trace calls as text
//   - [RecordingPen] and [DataPointPen] record calls for replay
//   - [FlattenPen] replaces curves by lines
//   - [SpikePen] adds spikes to polygons, see also [SpikeGlyph]
//   - [ThresholdPen] drops short segments
//   - [TransformPen] and [TransformPointPen] apply affine transformations
//   - [LengthPen] measures outlines
//   - [SVGPen] writes SVG path data
//
// [Glyph] is a simple in-memory outline that the pens can draw into and
// from, and [DrawGlyph] draws glyphs of fonts loaded with
// [golang.org/x/image/font/sfnt].
//
// # Geometry
//
// The pens are built on a small set of curve primitives: [Point], [CubicBez]
// and [QuadBez]. The length of quadratic Béziers is computed in closed form,
// cubic Béziers are measured by sampling.
package fontpens
