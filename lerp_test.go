package tween

import (
	"errors"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	from, err := Pt(0, 0).Vectorize()
	if err != nil {
		t.Fatal(err)
	}
	to, err := Pt(10, 20).Vectorize()
	if err != nil {
		t.Fatal(err)
	}

	f := func(progress float64, want []float64) {
		v, err := Lerp(from, to, progress)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, v.Values)
	}
	f(0, []float64{0, 0})
	f(1, []float64{10, 20})
	f(0.5, []float64{5, 10})
	// progress is not clamped
	f(1.5, []float64{15, 30})
	f(-0.5, []float64{-5, -10})
}

func TestLerpReconstructsAsFrom(t *testing.T) {
	from, _ := Pt(0, 0).Vectorize()
	to, _ := Pt(8, 8).Vectorize()
	v, err := Lerp(from, to, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.Interpolatable()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(2, 2), got)
}

func TestLerpArityMismatch(t *testing.T) {
	pv, _ := Pt(0, 0).Vectorize()
	rv, _ := Rect{0, 0, 1, 1}.Vectorize()

	_, err := Lerp(pv, rv, 0.5)
	var am *ErrArityMismatch
	if !errors.As(err, &am) {
		t.Fatalf("got %v, want an arity mismatch", err)
	}
	if am.Expected != 2 || am.Actual != 4 {
		t.Errorf("got expected=%d actual=%d, want expected=2 actual=4", am.Expected, am.Actual)
	}
}

func TestInterpolate(t *testing.T) {
	got, err := Interpolate(Sz(10, 10), Sz(20, 40), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Sz(15, 25), got)

	in, err := Interpolate(Insets{}, Insets{Top: 8, Left: 8, Bottom: 8, Right: 8}, 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Insets{Top: 16, Left: 16, Bottom: 16, Right: 16}, in)

	n, err := Interpolate(Float64(0), Float64(100), 0.125)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12.5 {
		t.Errorf("got %v, want 12.5", n)
	}
}

func TestInterpolateRectScenario(t *testing.T) {
	from := NewRectFromOrigin(Pt(0, 0), Sz(10, 10))
	to := NewRectFromOrigin(Pt(100, 100), Sz(20, 20))
	got, err := Interpolate(from, to, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, NewRectFromOrigin(Pt(25, 25), Sz(12.5, 12.5)), got)
}
