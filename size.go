package tween

import (
	"fmt"
	"math"
)

type Size struct {
	Width  float64
	Height float64
}

var _ Interpolatable = Size{}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Lerp linearly interpolates between two sizes.
func (sz Size) Lerp(o Size, t float64) Size {
	return Size{
		Width:  lerp(sz.Width, o.Width, t),
		Height: lerp(sz.Height, o.Height, t),
	}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}

// Components returns the arity of the size encoding.
func (sz Size) Components() int { return 2 }

// Vectorize encodes the size as [width, height].
func (sz Size) Vectorize() (Vector, error) {
	return NewVector([]float64{sz.Width, sz.Height}, reconstructor(SizeFromValues)), nil
}

// SizeFromValues reconstructs a size from its [width, height] encoding.
func SizeFromValues(values []float64) (Size, error) {
	if err := checkArity(2, len(values)); err != nil {
		return Size{}, err
	}
	return Sz(values[0], values[1]), nil
}
