package tween

import (
	"math"

	"github.com/spf13/cast"
)

// The scalar types wrap Go's numeric kinds so that plain numbers participate
// in the same encoding scheme as the compound graphical types. Each occupies
// a single slot and converts through float64, the common encoding type.
//
// Integers beyond ±2^53 exceed float64's exact integral range and lose
// precision on the round trip. This is a documented limitation, not an error.

// Float64 is a scalar double-precision value.
type Float64 float64

var _ Interpolatable = Float64(0)

// Lerp linearly interpolates between two scalars.
func (f Float64) Lerp(o Float64, t float64) Float64 {
	return Float64(lerp(float64(f), float64(o), t))
}

// Components returns the arity of the scalar encoding.
func (f Float64) Components() int { return 1 }

// Vectorize encodes the scalar as [value].
func (f Float64) Vectorize() (Vector, error) {
	return NewVector([]float64{float64(f)}, reconstructor(Float64FromValues)), nil
}

// Float64FromValues reconstructs a scalar from its single-value encoding.
func Float64FromValues(values []float64) (Float64, error) {
	if err := checkArity(1, len(values)); err != nil {
		return 0, err
	}
	return Float64(values[0]), nil
}

// Float32 is a scalar single-precision value. Encoding widens to float64 and
// reconstruction narrows back, which is exact for every float32.
type Float32 float32

var _ Interpolatable = Float32(0)

// Lerp linearly interpolates between two scalars. The blend is computed in
// float64.
func (f Float32) Lerp(o Float32, t float64) Float32 {
	return Float32(lerp(float64(f), float64(o), t))
}

// Components returns the arity of the scalar encoding.
func (f Float32) Components() int { return 1 }

// Vectorize encodes the scalar as [value].
func (f Float32) Vectorize() (Vector, error) {
	return NewVector([]float64{float64(f)}, reconstructor(Float32FromValues)), nil
}

// Float32FromValues reconstructs a scalar from its single-value encoding.
func Float32FromValues(values []float64) (Float32, error) {
	if err := checkArity(1, len(values)); err != nil {
		return 0, err
	}
	return Float32(values[0]), nil
}

// Int is a scalar integer value. Reconstruction rounds to the nearest
// integer, so blended positions like 9.999999 land on 10 rather than
// truncating down.
type Int int

var _ Interpolatable = Int(0)

// Lerp linearly interpolates between two integers, rounding the blend to the
// nearest integer.
func (i Int) Lerp(o Int, t float64) Int {
	return Int(math.Round(lerp(float64(i), float64(o), t)))
}

// Components returns the arity of the scalar encoding.
func (i Int) Components() int { return 1 }

// Vectorize encodes the scalar as [value].
func (i Int) Vectorize() (Vector, error) {
	return NewVector([]float64{float64(i)}, reconstructor(IntFromValues)), nil
}

// IntFromValues reconstructs an integer from its single-value encoding.
func IntFromValues(values []float64) (Int, error) {
	if err := checkArity(1, len(values)); err != nil {
		return 0, err
	}
	return Int(math.Round(values[0])), nil
}

// Number is a boxed numeric value: it accepts any of Go's numeric kinds (and
// numeric strings) at construction and carries the value in the common
// encoding type.
type Number struct {
	value float64
}

var _ Interpolatable = Number{}

// Num boxes an arbitrary numeric value. Conversion follows cast semantics;
// non-numeric values yield an error.
func Num(value any) (Number, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return Number{}, err
	}
	return Number{value: f}, nil
}

// Float64 returns the boxed value.
func (n Number) Float64() float64 { return n.value }

// Int returns the boxed value rounded to the nearest integer.
func (n Number) Int() int { return int(math.Round(n.value)) }

// Lerp linearly interpolates between two boxed numbers.
func (n Number) Lerp(o Number, t float64) Number {
	return Number{value: lerp(n.value, o.value, t)}
}

// Components returns the arity of the boxed-number encoding.
func (n Number) Components() int { return 1 }

// Vectorize encodes the boxed number as [value].
func (n Number) Vectorize() (Vector, error) {
	return NewVector([]float64{n.value}, reconstructor(NumberFromValues)), nil
}

// NumberFromValues reconstructs a boxed number from its single-value
// encoding.
func NumberFromValues(values []float64) (Number, error) {
	if err := checkArity(1, len(values)); err != nil {
		return Number{}, err
	}
	return Number{value: values[0]}, nil
}
