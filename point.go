package fontpens

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a position in glyph space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Vec returns the vector from the origin to pt.
func (pt Point) Vec() vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

func (pt Point) Translate(o vec.Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform applies m to pt, using the PostScript convention for the
// coefficients (xx, xy, yx, yy, dx, dy).
func (pt Point) Transform(m matrix.Matrix) Point {
	return Point{
		X: m[0]*pt.X + m[2]*pt.Y + m[4],
		Y: m[1]*pt.X + m[3]*pt.Y + m[5],
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) vec.Vec2 {
	return vec.Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points. Factors outside [0, 1]
// extrapolate.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.LerpXY(o, t, t)
}

// LerpXY interpolates between two points using independent factors for the
// two axes.
func (pt Point) LerpXY(o Point, tx, ty float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*tx,
		Y: pt.Y + (o.Y-pt.Y)*ty,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Sqrt(x*x + y*y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
