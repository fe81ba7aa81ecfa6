package fontpens

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// mustPanic calls fn and fails the test unless it panics with a *PenError
// for op.
func mustPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		var perr *PenError
		if !ok || !errors.As(err, &perr) {
			t.Errorf("got panic %v, want *PenError", r)
			return
		}
		if perr.Op != op {
			t.Errorf("got panic in %q, want %q", perr.Op, op)
		}
	}()
	fn()
}

// trace returns the calls draw makes on a PrintPen.
func trace(draw func(pen Pen)) string {
	sb := &strings.Builder{}
	draw(NewPrintPen(sb))
	return sb.String()
}

// tracePoints returns the calls draw makes on a PrintPointPen.
func tracePoints(draw func(pen PointPen)) string {
	sb := &strings.Builder{}
	draw(NewPrintPointPen(sb))
	return sb.String()
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

// drawRect draws the square used by many tests.
func drawRect(pen Pen) {
	pen.MoveTo(Pt(100, 100))
	pen.LineTo(Pt(100, 300))
	pen.LineTo(Pt(300, 300))
	pen.LineTo(Pt(300, 100))
	pen.ClosePath()
}
