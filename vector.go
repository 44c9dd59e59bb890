package tween

import "slices"

// Vector is the type-erased numeric encoding of an [Interpolatable] value: an
// ordered sequence of float64 values plus a reconstruction function bound to
// the concrete type that produced the encoding. The vector does not know the
// name of that type; only the bound function does.
//
// Values may be mutated freely between reconstructions, which is how a
// blending engine advances an animation: overwrite Values with the blended
// sequence, then call [Vector.Interpolatable] to obtain the typed value.
// Mutations must preserve the length if a later reconstruction is to succeed.
//
// A Vector is a passive data holder with no synchronization. Concurrent
// animations must each own their own Vector.
type Vector struct {
	Values []float64

	reconstruct func([]float64) (Interpolatable, error)
}

// NewVector returns a vector over values with the given reconstruction
// function bound to it. Every Vectorize implementation in this package is
// built on NewVector; the only other way to obtain a bound vector is to clone
// one.
func NewVector(values []float64, reconstruct func([]float64) (Interpolatable, error)) Vector {
	return Vector{
		Values:      values,
		reconstruct: reconstruct,
	}
}

// Clone returns a copy of the vector that shares the bound reconstruction
// function but owns an independent copy of the values, so that mutating one
// vector never affects the other.
func (v Vector) Clone() Vector {
	return Vector{
		Values:      slices.Clone(v.Values),
		reconstruct: v.reconstruct,
	}
}

// Interpolatable reconstructs a typed value from the current values using the
// bound reconstruction function. It is a pure function of the current state:
// calling it repeatedly without mutating Values yields equal results.
//
// Returns [ErrUnboundVector] for the zero Vector, and [ErrArityMismatch] if
// Values has been resized to a length the originating type does not accept.
func (v Vector) Interpolatable() (Interpolatable, error) {
	if v.reconstruct == nil {
		return nil, ErrUnboundVector
	}
	return v.reconstruct(v.Values)
}
