package track

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec3Arithmetic(t *testing.T) {
	diff(t, Vec(3, 5, 7), Vec(1, 2, 3).Add(Vec(2, 3, 4)))
	diff(t, Vec(-1, -1, -1), Vec(1, 2, 3).Sub(Vec(2, 3, 4)))
	diff(t, Vec(2, 4, 6), Vec(1, 2, 3).Mul(2))
	diff(t, Vec(0.5, 1, 1.5), Vec(1, 2, 3).Div(2))
	diff(t, Vec(-1, 2, -3), Vec(1, -2, 3).Negate())
	diff(t, Vec(2, 3, 4), Vec(1, 2, 3).Lerp(Vec(3, 4, 5), 0.5))
}

func TestVec3Products(t *testing.T) {
	if d := Vec(1, 2, 3).Dot(Vec(4, -5, 6)); d != 12 {
		t.Errorf("got dot product %v, want 12", d)
	}

	// The coordinate system is right-handed.
	x := Vec(1, 0, 0)
	y := Vec(0, 1, 0)
	z := Vec(0, 0, 1)
	diff(t, z, x.Cross(y))
	diff(t, x, y.Cross(z))
	diff(t, y, z.Cross(x))
	diff(t, z.Negate(), y.Cross(x))

	diff(t, Vec(-15, -2, 39), Vec(3, -3, 1).Cross(Vec(4, 9, 2)))
}

func TestVec3Hypot(t *testing.T) {
	v := Vec(3, 4, 12)
	if h := v.Hypot(); h != 13 {
		t.Errorf("got magnitude %v, want 13", h)
	}
	if h := v.Hypot2(); h != 169 {
		t.Errorf("got squared magnitude %v, want 169", h)
	}
	diff(t, 1.0, Vec(10, -4, 8).Normalize().Hypot(), cmpopts.EquateApprox(0, 1e-12))
}

func TestPerpendicularTo(t *testing.T) {
	vecs := []Vec3{
		Vec(1, 0, 0),
		Vec(0, 1, 0),
		Vec(0, 0, 1),
		Vec(0, 0, -1),
		Vec(1, 2, 3).Normalize(),
		Vec(0.001, 0, 1).Normalize(),
	}
	for _, v := range vecs {
		p := perpendicularTo(v)
		diff(t, 0.0, p.Dot(v), cmpopts.EquateApprox(0, 1e-12))
		diff(t, 1.0, p.Hypot(), cmpopts.EquateApprox(0, 1e-12))
	}
}
