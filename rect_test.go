package tween

import "testing"

// The encoding is origin and size, in exactly that order; swapping the halves
// would silently break interchange with other producers of the encoding.
func TestRectEncodingOrder(t *testing.T) {
	r := NewRectFromOrigin(Pt(10, 20), Sz(30, 40))
	v, err := r.Vectorize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{10, 20, 30, 40}, v.Values)
}

func TestRectRoundTrip(t *testing.T) {
	f := func(r Rect) {
		v, err := r.Vectorize()
		if err != nil {
			t.Fatal(err)
		}
		got, err := RectFromValues(v.Values)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, r, got)
	}
	f(Rect{10, 20, 40, 60})
	f(Rect{0, 0, 0, 0})
	// flipped rectangles keep their negative width and height
	f(Rect{40, 60, 10, 20})
}

func TestRectLerp(t *testing.T) {
	from := NewRectFromOrigin(Pt(0, 0), Sz(10, 10))
	to := NewRectFromOrigin(Pt(100, 100), Sz(20, 20))

	got := from.Lerp(to, 0.25)
	want := NewRectFromOrigin(Pt(25, 25), Sz(12.5, 12.5))
	diff(t, want, got)

	diff(t, from, from.Lerp(to, 0))
	diff(t, to, from.Lerp(to, 1))
}

func TestRectAccessors(t *testing.T) {
	r := Rect{10, 20, 40, 60}
	diff(t, Pt(10, 20), r.Origin())
	diff(t, Sz(30, 40), r.Size())
	diff(t, Pt(25, 40), r.Center())
	if !r.Contains(Pt(10, 20)) {
		t.Error("expected rect to contain its origin")
	}
	if r.Contains(Pt(40, 60)) {
		t.Error("expected rect to exclude its far corner")
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{0, 0, 10, 10}.Union(Rect{5, -5, 20, 5})
	diff(t, Rect{0, -5, 20, 10}, got)
}
