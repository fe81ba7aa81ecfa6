package fontpens

import (
	"errors"
	"fmt"
	"math"
)

// DefaultPrecision is the number of chords used by the sampling length
// estimators when callers have no better value.
const DefaultPrecision = 10

// ErrInvalidArgument is returned, wrapped, for arguments outside a function's
// domain, such as a non-positive sampling precision.
var ErrInvalidArgument = errors.New("invalid argument")

func checkPrecision(precision int) error {
	if precision < 1 {
		return fmt.Errorf("fontpens: precision %d, must be at least 1: %w", precision, ErrInvalidArgument)
	}
	return nil
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the point at parameter t.
//
// The end points are returned verbatim for t == 0 and t == 1, and t == 0.5
// is computed by midpoint subdivision, so that these common sample points
// are free of rounding asymmetry.
func (c CubicBez) Eval(t float64) Point {
	switch t {
	case 0:
		return c.P0
	case 1:
		return c.P3
	case 0.5:
		a := c.P0.Midpoint(c.P1)
		b := c.P1.Midpoint(c.P2)
		cc := c.P2.Midpoint(c.P3)
		d := a.Midpoint(b)
		e := b.Midpoint(cc)
		return d.Midpoint(e)
	}
	cx := (c.P1.X - c.P0.X) * 3
	cy := (c.P1.Y - c.P0.Y) * 3
	bx := (c.P2.X-c.P1.X)*3 - cx
	by := (c.P2.Y-c.P1.Y)*3 - cy
	ax := c.P3.X - c.P0.X - cx - bx
	ay := c.P3.Y - c.P0.Y - cy - by
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: ax*t3 + bx*t2 + cx*t + c.P0.X,
		Y: ay*t3 + by*t2 + cy*t + c.P0.Y,
	}
}

// EstimateLength approximates the arc length by summing the chords between
// precision+1 evenly spaced samples.
func (c CubicBez) EstimateLength(precision int) (float64, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, err
	}
	return sampledLength(c.Eval, precision), nil
}

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval returns the point at parameter t. The end points are returned
// verbatim for t == 0 and t == 1.
func (q QuadBez) Eval(t float64) Point {
	switch t {
	case 0:
		return q.P0
	case 1:
		return q.P2
	}
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}

// EstimateLength approximates the arc length by summing the chords between
// precision+1 evenly spaced samples.
func (q QuadBez) EstimateLength(precision int) (float64, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, err
	}
	return sampledLength(q.Eval, precision), nil
}

// Length returns the arc length of the quadratic Bézier segment.
//
// The length is computed with the closed-form solution of the arc length
// integral. Segments whose control point lies on the line through the end
// points, but not between them, make that formula divide by zero; those are
// measured with [QuadBez.EstimateLength] at the given precision instead.
//
// Source: http://www.malczak.linuxpl.com/blog/quadratic-bezier-curve-length/
func (q QuadBez) Length(precision int) (float64, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, err
	}
	p0, p1, p2 := q.P0, q.P1, q.P2
	if p0 == p1 || p1 == p2 {
		if p0 == p2 {
			return 0, nil
		}
		return p0.Distance(p2), nil
	}

	ax := p0.X - 2*p1.X + p2.X
	ay := p0.Y - 2*p1.Y + p2.Y
	bx := 2*p1.X - 2*p0.X
	by := 2*p1.Y - 2*p0.Y

	a := 4 * (ax*ax + ay*ay)
	b := 4 * (ax*bx + ay*by)
	c := bx*bx + by*by

	if a == 0 {
		// The control point is the midpoint of the chord, so b is zero as
		// well and the segment is a uniformly traversed line.
		if c == 0 {
			return 0, nil
		}
		return p0.Distance(p2), nil
	}

	sabc := 2 * math.Sqrt(a+b+c)
	a2 := math.Sqrt(a)
	a32 := 2 * a * a2
	c2 := 2 * math.Sqrt(c)
	ba := b / a2

	den := ba + c2
	if den <= 0 {
		return sampledLength(q.Eval, precision), nil
	}
	arg := (2*a2 + ba + sabc) / den
	if !(arg > 0) || math.IsInf(arg, 0) {
		return sampledLength(q.Eval, precision), nil
	}
	length := (a32*sabc +
		a2*b*(sabc-c2) +
		(4*c*a-b*b)*math.Log(arg)) / (4 * a32)
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return sampledLength(q.Eval, precision), nil
	}
	return length, nil
}

func sampledLength(eval func(t float64) Point, precision int) float64 {
	step := 1.0 / float64(precision)
	var length float64
	prev := eval(0)
	for i := 1; i <= precision; i++ {
		pt := eval(float64(i) * step)
		length += prev.Distance(pt)
		prev = pt
	}
	return length
}
