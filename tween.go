package tween

// A Tween samples the line between two endpoint values at arbitrary progress
// values. The endpoints are vectorized once, at construction; every call to
// [Tween.At] blends into a single retained vector and reconstructs from it.
//
// The zero-to-one convention for progress is not enforced: progress outside
// [0, 1] extrapolates. Driving a Tween over time (timers, frame callbacks)
// is the caller's concern; a Tween itself is pure state.
//
// A Tween is not safe for concurrent use.
type Tween struct {
	from, to Vector
	current  Vector

	// Ease, if non-nil, warps progress before blending. It receives the
	// raw progress value and returns the effective one.
	Ease func(float64) float64
}

// NewTween vectorizes the two endpoint values. The endpoints must encode to
// the same arity — in practice, be the same type; otherwise an
// [ErrArityMismatch] is returned.
func NewTween(from, to Interpolatable) (*Tween, error) {
	fv, err := from.Vectorize()
	if err != nil {
		return nil, err
	}
	tv, err := to.Vectorize()
	if err != nil {
		return nil, err
	}
	if err := checkArity(len(fv.Values), len(tv.Values)); err != nil {
		return nil, err
	}
	return &Tween{
		from:    fv,
		to:      tv,
		current: fv.Clone(),
	}, nil
}

// At returns the value at the given progress. At(0) reconstructs the first
// endpoint, At(1) the second.
func (tw *Tween) At(progress float64) (Interpolatable, error) {
	if tw.Ease != nil {
		progress = tw.Ease(progress)
	}
	for i := range tw.current.Values {
		tw.current.Values[i] = lerp(tw.from.Values[i], tw.to.Values[i], progress)
	}
	return tw.current.Interpolatable()
}
