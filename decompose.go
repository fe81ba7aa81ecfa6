package fontpens

// DecomposeSuperBezierSegment splits the points of a CurveTo call with two
// or more off-curve points into cubic pieces. Each returned triple holds the
// two control points and the end point of one piece; the first piece starts
// at the current point.
//
// With exactly two off-curve points, the result is the plain cubic. Fewer
// than three points panic with a [*PenError].
func DecomposeSuperBezierSegment(pts []Point) [][3]Point {
	n := len(pts) - 1
	if n < 2 {
		panic(penError("curveTo", "super Bézier needs at least three points"))
	}
	var out [][3]Point
	pt1 := pts[0]
	var pt2 Point
	havePt2 := false
	for i := 2; i <= n; i++ {
		nDivisions := min(i, 3, n-i+2)
		for j := 1; j < nDivisions; j++ {
			factor := float64(j) / float64(nDivisions)
			temp := pts[i-2].Lerp(pts[i-1], factor)
			if !havePt2 {
				pt2 = temp
				havePt2 = true
				continue
			}
			out = append(out, [3]Point{pt1, pt2, pt2.Midpoint(temp)})
			pt1 = temp
			havePt2 = false
		}
	}
	return append(out, [3]Point{pt1, pts[n-1], pts[n]})
}

// DecomposeQuadraticSegment splits the points of a QCurveTo call into
// quadratic pieces, inserting the on-curve points implied halfway between
// consecutive off-curve points. Each returned pair holds the control point
// and the end point of one piece. Fewer than two points panic with a
// [*PenError].
func DecomposeQuadraticSegment(pts []Point) [][2]Point {
	n := len(pts) - 1
	if n < 1 {
		panic(penError("qCurveTo", "quadratic segment needs at least two points"))
	}
	out := make([][2]Point, 0, n)
	for i := 0; i < n-1; i++ {
		out = append(out, [2]Point{pts[i], pts[i].Midpoint(pts[i+1])})
	}
	return append(out, [2]Point{pts[n-1], pts[n]})
}

// segmentSink receives the single-segment pieces of decomposed curves.
type segmentSink interface {
	lineTo(pt Point)
	quadTo(p1, p2 Point)
	cubicTo(p1, p2, p3 Point)
}

// splitCurveTo feeds the arguments of a CurveTo call to sink, one segment at
// a time.
func splitCurveTo(op string, pts []Point, sink segmentSink) {
	switch len(pts) {
	case 0:
		panic(penError(op, "must pass at least one point"))
	case 1:
		sink.lineTo(pts[0])
	case 2:
		sink.quadTo(pts[0], pts[1])
	case 3:
		sink.cubicTo(pts[0], pts[1], pts[2])
	default:
		for _, c := range DecomposeSuperBezierSegment(pts) {
			sink.cubicTo(c[0], c[1], c[2])
		}
	}
}

// splitQCurveTo feeds the arguments of a QCurveTo call to sink, one segment
// at a time.
func splitQCurveTo(op string, pts []Point, sink segmentSink) {
	switch len(pts) {
	case 0:
		panic(penError(op, "must pass at least one point"))
	case 1:
		sink.lineTo(pts[0])
	default:
		for _, q := range DecomposeQuadraticSegment(pts) {
			sink.quadTo(q[0], q[1])
		}
	}
}
