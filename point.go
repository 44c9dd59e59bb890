package tween

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

var _ Interpolatable = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point moved by (dx, dy).
func (pt Point) Translate(dx, dy float64) Point {
	return Point{
		X: pt.X + dx,
		Y: pt.Y + dy,
	}
}

// Transform applies an affine transform to the point.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.A*pt.X + aff.C*pt.Y + aff.TX,
		Y: aff.B*pt.X + aff.D*pt.Y + aff.TY,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: lerp(pt.X, o.X, t),
		Y: lerp(pt.Y, o.Y, t),
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
	return math.Hypot(x, y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Components returns the arity of the point encoding.
func (pt Point) Components() int { return 2 }

// Vectorize encodes the point as [x, y].
func (pt Point) Vectorize() (Vector, error) {
	return NewVector([]float64{pt.X, pt.Y}, reconstructor(PointFromValues)), nil
}

// PointFromValues reconstructs a point from its [x, y] encoding.
func PointFromValues(values []float64) (Point, error) {
	if err := checkArity(2, len(values)); err != nil {
		return Point{}, err
	}
	return Pt(values[0], values[1]), nil
}
