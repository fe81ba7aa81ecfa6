package fontpens

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// Pen receives an outline as a sequence of segments.
//
// Each contour starts with MoveTo and ends with ClosePath or EndPath.
// CurveTo receives all off-curve points followed by the on-curve end point;
// with more than three points it describes a "super Bézier", see
// [DecomposeSuperBezierSegment]. QCurveTo receives any number of off-curve
// points followed by the end point, with on-curve points implied halfway
// between consecutive off-curve points, see [DecomposeQuadraticSegment].
//
// Components may be added before or after contours, never while a contour is
// open.
type Pen interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CurveTo(pts ...Point)
	QCurveTo(pts ...Point)
	ClosePath()
	EndPath()
	AddComponent(baseGlyph string, transform matrix.Matrix)
}

// PointPen receives an outline as a sequence of points.
//
// Every contour is bracketed by BeginPath and EndPath. An empty identifier
// means the contour, point or component has none.
type PointPen interface {
	BeginPath(identifier string)
	AddPoint(pt Point, info PointInfo)
	EndPath()
	AddComponent(baseGlyph string, transform matrix.Matrix, identifier string)
}

// Drawer is implemented by outlines that can draw themselves into a [Pen].
type Drawer interface {
	Draw(pen Pen)
}

// PointDrawer is implemented by outlines that can draw themselves into a
// [PointPen].
type PointDrawer interface {
	DrawPoints(pen PointPen)
}

// IdentifierConflictSkipper is implemented by point pens that can be told to
// drop identifiers that are already in use instead of failing.
type IdentifierConflictSkipper interface {
	SetSkipConflictingIdentifiers(skip bool)
}

// SegmentType is the role of a point in a point pen contour. Off-curve points
// have no segment type.
type SegmentType string

const (
	SegmentOffCurve SegmentType = ""
	SegmentMove     SegmentType = "move"
	SegmentLine     SegmentType = "line"
	SegmentCurve    SegmentType = "curve"
	SegmentQCurve   SegmentType = "qcurve"
)

// PointInfo holds the metadata of a point passed to [PointPen.AddPoint].
// Empty strings mean the field is absent.
type PointInfo struct {
	SegmentType SegmentType
	Smooth      bool
	Name        string
	Identifier  string
	// Extra holds metadata that has no dedicated field. Pens pass it on
	// untouched.
	Extra map[string]any
}

// PenError reports a violation of the pen protocols, such as adding a point
// outside of a contour. Pens panic with a *PenError; these are programming
// errors, not conditions to recover from.
type PenError struct {
	Op  string
	Msg string
}

func (err *PenError) Error() string {
	return fmt.Sprintf("fontpens: %s: %s", err.Op, err.Msg)
}

func penError(op, msg string) *PenError {
	return &PenError{Op: op, Msg: msg}
}
