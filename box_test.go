package track

import (
	"testing"
)

func TestBoxBasics(t *testing.T) {
	b := NewBoxFromPoints(Pt(4, 5, 6), Pt(1, 2, 3))
	diff(t, Box{1, 2, 3, 4, 5, 6}, b)
	diff(t, Pt(1, 2, 3), b.Origin())
	diff(t, Pt(2.5, 3.5, 4.5), b.Center())
	diff(t, Vec(3, 3, 3), b.Dimensions())
	if v := b.Volume(); v != 27 {
		t.Errorf("got volume %v, want 27", v)
	}

	diff(t, Box{-1, -2, -3, 1, 2, 3}, NewBoxFromCenter(Pt(0, 0, 0), Vec(1, 2, 3)))
}

func TestBoxNegativeDimensions(t *testing.T) {
	b := Box{10, 0, 0, 0, 10, 10}
	if w := b.Width(); w != -10 {
		t.Errorf("got width %v, want -10", w)
	}
	diff(t, Box{0, 0, 0, 10, 10, 10}, b.Abs())
	if got := b.MinX(); got != 0 {
		t.Errorf("got min x %v, want 0", got)
	}
	if got := b.MaxX(); got != 10 {
		t.Errorf("got max x %v, want 10", got)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{0, 0, 0, 10, 10, 10}
	for _, pt := range []Point{Pt(0, 0, 0), Pt(5, 5, 5), Pt(9.99, 0, 3)} {
		if !b.Contains(pt) {
			t.Errorf("expected %v to contain %v", b, pt)
		}
	}
	// The maximum corner is exclusive.
	for _, pt := range []Point{Pt(10, 10, 10), Pt(5, 5, 10), Pt(-1, 5, 5)} {
		if b.Contains(pt) {
			t.Errorf("expected %v not to contain %v", b, pt)
		}
	}
}

func TestBoxUnionIntersect(t *testing.T) {
	b1 := Box{0, 0, 0, 2, 2, 2}
	b2 := Box{1, 1, 1, 3, 4, 5}
	diff(t, Box{0, 0, 0, 3, 4, 5}, b1.Union(b2))
	diff(t, Box{1, 1, 1, 2, 2, 2}, b1.Intersect(b2))

	// Disjoint boxes intersect in a zero-volume box.
	if v := b1.Intersect(Box{5, 5, 5, 6, 6, 6}).Volume(); v != 0 {
		t.Errorf("got volume %v, want 0", v)
	}

	pts := []Point{Pt(1, 2, 3), Pt(-1, 5, 0), Pt(4, 0, 2)}
	b := NewBoxFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	diff(t, Box{-1, 0, 0, 4, 5, 3}, b)
}

func TestBoxInflateTranslateScale(t *testing.T) {
	b := Box{0, 0, 0, 1, 1, 1}
	diff(t, Box{-1, -2, -3, 2, 3, 4}, b.Inflate(1, 2, 3))
	diff(t, Box{1, 2, 3, 2, 3, 4}, b.Translate(Vec(1, 2, 3)))
	diff(t, Box{0, 0, 0, 2, 2, 2}, b.ScaleFromOrigin(2))
}
