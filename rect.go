package tween

import "math"

// Rect is an axis-aligned rectangle, stored as two corner points.
//
// Rectangles interpolate and encode as origin plus size, not as corners: the
// numeric encoding is [origin.x, origin.y, width, height]. Since width and
// height are differences of the stored corners, the encoding round-trips
// exactly.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Interpolatable = Rect{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the
// right and down (for positive sizes) from the origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

// WithOrigin returns a new rectangle with the same size as r and a new origin.
func (r Rect) WithOrigin(origin Point) Rect {
	return NewRectFromOrigin(origin, r.Size())
}

// WithSize returns a new rectangle with the same origin as r and a new size.
func (r Rect) WithSize(size Size) Rect {
	return NewRectFromOrigin(r.Origin(), size)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 + dx,
		Y0: r.Y0 + dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

// Lerp interpolates origin and size independently, matching the numeric
// encoding. The result equals lerping corners only when both rectangles are
// in Abs form.
func (r Rect) Lerp(o Rect, t float64) Rect {
	return NewRectFromOrigin(
		r.Origin().Lerp(o.Origin(), t),
		r.Size().Lerp(o.Size(), t),
	)
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// Components returns the arity of the rectangle encoding.
func (r Rect) Components() int { return 4 }

// Vectorize encodes the rectangle as [origin.x, origin.y, width, height].
func (r Rect) Vectorize() (Vector, error) {
	return NewVector([]float64{r.X0, r.Y0, r.Width(), r.Height()}, reconstructor(RectFromValues)), nil
}

// RectFromValues reconstructs a rectangle from its
// [origin.x, origin.y, width, height] encoding.
func RectFromValues(values []float64) (Rect, error) {
	if err := checkArity(4, len(values)); err != nil {
		return Rect{}, err
	}
	return NewRectFromOrigin(Pt(values[0], values[1]), Sz(values[2], values[3])), nil
}
