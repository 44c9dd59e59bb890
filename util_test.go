package tween

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-6
}

func approxEqualSlices(xs, ys []float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !approxEqual(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// allValues returns one representative of every supported type, for tests
// that assert properties of the whole closed set.
func allValues() []Interpolatable {
	return []Interpolatable{
		Pt(1.5, -2),
		Sz(30, 40),
		Rect{10, 20, 40, 60},
		Scale(2, 3).Mul(Rotate(0.5)),
		Translate3D(1, 2, 3).Mul(Rotate3D(0.25, 0, 0, 1)),
		Insets{Top: 1, Left: 2, Bottom: 3, Right: 4},
		Float64(3.25),
		Float32(1.5),
		Int(42),
		Number{value: 9.5},
		RGBA(0.2, 0.4, 0.6, 1),
		Gray(0.5, 1),
		HSB(0.75, 0.5, 0.25, 0.5),
	}
}
