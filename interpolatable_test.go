package tween

import (
	"errors"
	"fmt"
	"testing"
)

// Every supported type must produce a vector of exactly its declared arity.
func TestComponentsInvariant(t *testing.T) {
	for _, value := range allValues() {
		v, err := value.Vectorize()
		if err != nil {
			t.Errorf("%T: %v", value, err)
			continue
		}
		if len(v.Values) != value.Components() {
			t.Errorf("%T: vectorized to %d values, Components says %d", value, len(v.Values), value.Components())
		}
	}
}

// Vectorizing and reconstructing must return the original value, for every
// type in the closed set.
func TestRoundTripIdentity(t *testing.T) {
	for _, value := range allValues() {
		v, err := value.Vectorize()
		if err != nil {
			t.Errorf("%T: %v", value, err)
			continue
		}
		got, err := v.Interpolatable()
		if err != nil {
			t.Errorf("%T: %v", value, err)
			continue
		}
		if got != value {
			t.Errorf("%T: got %v, want %v", value, got, value)
		}
	}
}

// Reconstruction with too few values must fail with an arity error instead of
// reading out of bounds, for every type in the closed set.
func TestFromValuesArity(t *testing.T) {
	tests := []struct {
		expected int
		from     func([]float64) (Interpolatable, error)
	}{
		{2, reconstructor(PointFromValues)},
		{2, reconstructor(SizeFromValues)},
		{4, reconstructor(RectFromValues)},
		{6, reconstructor(AffineFromValues)},
		{16, reconstructor(Transform3DFromValues)},
		{4, reconstructor(InsetsFromValues)},
		{1, reconstructor(Float64FromValues)},
		{1, reconstructor(Float32FromValues)},
		{1, reconstructor(IntFromValues)},
		{1, reconstructor(NumberFromValues)},
		{4, colorReconstructor(RGBAModel)},
		{4, colorReconstructor(GrayModel)},
		{4, colorReconstructor(HSBModel)},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			short := make([]float64, tt.expected-1)
			_, err := tt.from(short)
			var am *ErrArityMismatch
			if !errors.As(err, &am) {
				t.Fatalf("got %v, want an arity mismatch", err)
			}
			if am.Expected != tt.expected || am.Actual != tt.expected-1 {
				t.Errorf("got expected=%d actual=%d, want expected=%d actual=%d",
					am.Expected, am.Actual, tt.expected, tt.expected-1)
			}

			if _, err := tt.from(make([]float64, tt.expected)); err != nil {
				t.Errorf("got %v for a correctly sized sequence", err)
			}
		})
	}
}
