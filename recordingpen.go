package fontpens

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
)

type OpKind int

const (
	/// Start a new contour at the point.
	MoveToOp OpKind = iota + 1
	/// Draw a line from the current point.
	LineToOp
	/// Draw a cubic (or super) Bézier through the points.
	CurveToOp
	/// Draw a quadratic B-spline through the points.
	QCurveToOp
	/// Close the contour.
	ClosePathOp
	/// End the contour without closing it.
	EndPathOp
	/// Place a component.
	AddComponentOp
)

func (k OpKind) String() string {
	switch k {
	case MoveToOp:
		return "moveTo"
	case LineToOp:
		return "lineTo"
	case CurveToOp:
		return "curveTo"
	case QCurveToOp:
		return "qCurveTo"
	case ClosePathOp:
		return "closePath"
	case EndPathOp:
		return "endPath"
	case AddComponentOp:
		return "addComponent"
	default:
		return "invalidOp"
	}
}

// Operation is one recorded [Pen] call.
type Operation struct {
	Kind   OpKind
	Points []Point
	// BaseGlyph and Transform are only set for AddComponentOp.
	BaseGlyph string
	Transform matrix.Matrix
}

func (op Operation) String() string {
	switch op.Kind {
	case AddComponentOp:
		return fmt.Sprintf("%s(%q, %s)", op.Kind, op.BaseGlyph, formatTransform(op.Transform))
	default:
		return fmt.Sprintf("%s(%s)", op.Kind, formatPoints(op.Points))
	}
}

// Apply makes the call described by op on pen.
func (op Operation) Apply(pen Pen) {
	switch op.Kind {
	case MoveToOp:
		pen.MoveTo(op.Points[0])
	case LineToOp:
		pen.LineTo(op.Points[0])
	case CurveToOp:
		pen.CurveTo(op.Points...)
	case QCurveToOp:
		pen.QCurveTo(op.Points...)
	case ClosePathOp:
		pen.ClosePath()
	case EndPathOp:
		pen.EndPath()
	case AddComponentOp:
		pen.AddComponent(op.BaseGlyph, op.Transform)
	default:
		panic(fmt.Sprintf("invalid OpKind %v", op.Kind))
	}
}

var _ Pen = (*RecordingPen)(nil)
var _ Drawer = RecordingPen{}

// RecordingPen is a [Pen] that records the calls it receives, so they can be
// replayed later.
type RecordingPen []Operation

func (r *RecordingPen) push(op Operation) { *r = append(*r, op) }

func (r *RecordingPen) MoveTo(pt Point) { r.push(Operation{Kind: MoveToOp, Points: []Point{pt}}) }
func (r *RecordingPen) LineTo(pt Point) { r.push(Operation{Kind: LineToOp, Points: []Point{pt}}) }

func (r *RecordingPen) CurveTo(pts ...Point) {
	r.push(Operation{Kind: CurveToOp, Points: slices.Clone(pts)})
}

func (r *RecordingPen) QCurveTo(pts ...Point) {
	r.push(Operation{Kind: QCurveToOp, Points: slices.Clone(pts)})
}

func (r *RecordingPen) ClosePath() { r.push(Operation{Kind: ClosePathOp}) }
func (r *RecordingPen) EndPath()   { r.push(Operation{Kind: EndPathOp}) }

func (r *RecordingPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	r.push(Operation{Kind: AddComponentOp, BaseGlyph: baseGlyph, Transform: transform})
}

// Replay makes the recorded calls on pen, in order.
func (r RecordingPen) Replay(pen Pen) {
	for _, op := range r {
		op.Apply(pen)
	}
}

// Draw implements [Drawer].
func (r RecordingPen) Draw(pen Pen) { r.Replay(pen) }

// Clear drops all recorded calls.
func (r *RecordingPen) Clear() {
	*r = (*r)[:0]
}
