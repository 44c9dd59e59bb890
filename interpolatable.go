package tween

// Interpolatable describes values that can be encoded as a fixed-length
// numeric vector and reconstructed from one. The set of implementations is
// closed: every supported type lives in this package and is known at compile
// time.
//
// Implementations guarantee that Vectorize returns a [Vector] whose length
// equals Components, and that the vector's bound reconstruction function
// accepts exactly that many values.
type Interpolatable interface {
	// Components returns the fixed number of numeric slots the type's
	// encoding occupies. It is a constant per type.
	Components() int

	// Vectorize encodes the value as a [Vector] that remembers how to
	// reconstruct a value of the same type.
	Vectorize() (Vector, error)
}

// reconstructor adapts a typed FromValues function to the type-erased
// signature a [Vector] stores.
func reconstructor[T Interpolatable](from func([]float64) (T, error)) func([]float64) (Interpolatable, error) {
	return func(values []float64) (Interpolatable, error) {
		return from(values)
	}
}
