package tween

import (
	"fmt"
	"math"
)

// Insets describe distances from the four edges of a rectangle, as used for
// margins and padding. Positive values inset towards the center.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

var _ Interpolatable = Insets{}

func (in Insets) String() string {
	return fmt.Sprintf("{%g %g %g %g}", in.Top, in.Left, in.Bottom, in.Right)
}

// InsetRect shrinks r by the insets. Negative insets grow the rectangle.
func (in Insets) InsetRect(r Rect) Rect {
	return Rect{
		X0: r.X0 + in.Left,
		Y0: r.Y0 + in.Top,
		X1: r.X1 - in.Right,
		Y1: r.Y1 - in.Bottom,
	}
}

// Lerp linearly interpolates each side independently.
func (in Insets) Lerp(o Insets, t float64) Insets {
	return Insets{
		Top:    lerp(in.Top, o.Top, t),
		Left:   lerp(in.Left, o.Left, t),
		Bottom: lerp(in.Bottom, o.Bottom, t),
		Right:  lerp(in.Right, o.Right, t),
	}
}

func (in Insets) IsInf() bool {
	return math.IsInf(in.Top, 0) ||
		math.IsInf(in.Left, 0) ||
		math.IsInf(in.Bottom, 0) ||
		math.IsInf(in.Right, 0)
}

func (in Insets) IsNaN() bool {
	return math.IsNaN(in.Top) ||
		math.IsNaN(in.Left) ||
		math.IsNaN(in.Bottom) ||
		math.IsNaN(in.Right)
}

// Components returns the arity of the insets encoding.
func (in Insets) Components() int { return 4 }

// Vectorize encodes the insets as [top, left, bottom, right].
func (in Insets) Vectorize() (Vector, error) {
	return NewVector([]float64{in.Top, in.Left, in.Bottom, in.Right}, reconstructor(InsetsFromValues)), nil
}

// InsetsFromValues reconstructs insets from their [top, left, bottom, right]
// encoding.
func InsetsFromValues(values []float64) (Insets, error) {
	if err := checkArity(4, len(values)); err != nil {
		return Insets{}, err
	}
	return Insets{
		Top:    values[0],
		Left:   values[1],
		Bottom: values[2],
		Right:  values[3],
	}, nil
}
