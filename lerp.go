package tween

// lerp linearly interpolates between two scalars.
func lerp(a, b, t float64) float64 {
	// a + t * (b-a)
	return a + (b-a)*t
}

// Lerp blends two vectors element-wise at progress t and returns the result
// as a new vector bound to from's reconstruction function. t is typically in
// [0, 1] but is not clamped; values outside that range extrapolate linearly.
//
// The two vectors must have the same length; otherwise an [ErrArityMismatch]
// carrying from's length as the expected arity is returned. Blending vectors
// of equal length that originate from different types is not detected and
// reconstructs as from's type.
func Lerp(from, to Vector, t float64) (Vector, error) {
	if err := checkArity(len(from.Values), len(to.Values)); err != nil {
		return Vector{}, err
	}
	values := make([]float64, len(from.Values))
	for i := range values {
		values[i] = lerp(from.Values[i], to.Values[i], t)
	}
	return NewVector(values, from.reconstruct), nil
}

// Interpolate blends two values of the same type at progress t in one shot:
// vectorize both endpoints, blend element-wise, reconstruct.
//
// For repeated sampling of the same pair of endpoints, use a [Tween], which
// vectorizes the endpoints once.
func Interpolate[T Interpolatable](from, to T, t float64) (T, error) {
	var zero T
	fv, err := from.Vectorize()
	if err != nil {
		return zero, err
	}
	tv, err := to.Vectorize()
	if err != nil {
		return zero, err
	}
	bv, err := Lerp(fv, tv, t)
	if err != nil {
		return zero, err
	}
	value, err := bv.Interpolatable()
	if err != nil {
		return zero, err
	}
	return value.(T), nil
}
