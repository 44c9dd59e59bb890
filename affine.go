package tween

import "math"

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, tx, ty), then the resulting
// transformation represents this augmented matrix:
//
//	| a c tx |
//	| b d ty |
//	| 0 0 1  |
//
// This is the convention used by most 2D graphics APIs for their affine
// transform types, and the order in which the coefficients encode.
type Affine struct {
	A, B, C, D, TX, TY float64
}

var _ Interpolatable = Affine{}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Coefficients returns the coefficients of the transform in encoding order.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.TX, aff.TY}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.C*o.B,
		aff.B*o.A + aff.D*o.B,
		aff.A*o.C + aff.C*o.D,
		aff.B*o.C + aff.D*o.D,
		aff.A*o.TX + aff.C*o.TY + aff.TX,
		aff.B*o.TX + aff.D*o.TY + aff.TY,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.D - aff.B*aff.C
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.D,
		-invDet * aff.B,
		-invDet * aff.C,
		+invDet * aff.A,
		+invDet * (aff.C*aff.TY - aff.D*aff.TX),
		+invDet * (aff.B*aff.TX - aff.A*aff.TY),
	}
}

// Lerp interpolates each coefficient independently. Note that interpolating
// rotations coefficient-wise passes through degenerate transforms; animating
// a rotation is better expressed by interpolating the angle and calling
// [Rotate] with the result.
func (aff Affine) Lerp(o Affine, t float64) Affine {
	return Affine{
		lerp(aff.A, o.A, t),
		lerp(aff.B, o.B, t),
		lerp(aff.C, o.C, t),
		lerp(aff.D, o.D, t),
		lerp(aff.TX, o.TX, t),
		lerp(aff.TY, o.TY, t),
	}
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.A, 0) ||
		math.IsInf(aff.B, 0) ||
		math.IsInf(aff.C, 0) ||
		math.IsInf(aff.D, 0) ||
		math.IsInf(aff.TX, 0) ||
		math.IsInf(aff.TY, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.A) ||
		math.IsNaN(aff.B) ||
		math.IsNaN(aff.C) ||
		math.IsNaN(aff.D) ||
		math.IsNaN(aff.TX) ||
		math.IsNaN(aff.TY)
}

// Components returns the arity of the affine transform encoding.
func (aff Affine) Components() int { return 6 }

// Vectorize encodes the transform as [a, b, c, d, tx, ty].
func (aff Affine) Vectorize() (Vector, error) {
	return NewVector([]float64{aff.A, aff.B, aff.C, aff.D, aff.TX, aff.TY}, reconstructor(AffineFromValues)), nil
}

// AffineFromValues reconstructs an affine transform from its
// [a, b, c, d, tx, ty] encoding.
func AffineFromValues(values []float64) (Affine, error) {
	if err := checkArity(6, len(values)); err != nil {
		return Affine{}, err
	}
	return Affine{values[0], values[1], values[2], values[3], values[4], values[5]}, nil
}
