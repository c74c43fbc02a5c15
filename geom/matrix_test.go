package geom

import "testing"

func TestApply4x4Identity(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Apply4x4(Identity4(), p)
	if got != p {
		t.Errorf("Apply4x4(Identity, %v) = %v, want %v", p, got, p)
	}
}

func TestApply4x4Translate(t *testing.T) {
	m := Translate4(10, -5, 2)
	got := Apply4x4(m, Vec3{1, 1, 1})
	want := Vec3{11, -4, 3}
	if got != want {
		t.Errorf("Apply4x4(Translate, ...) = %v, want %v", got, want)
	}
}

func TestApply4x4Scale(t *testing.T) {
	m := Scale4(2, 3, 4)
	got := Apply4x4(m, Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Apply4x4(Scale, ...) = %v, want %v", got, want)
	}
}

func TestMultiplyComposesTranslateThenScale(t *testing.T) {
	m := Scale4(2, 2, 2).Multiply(Translate4(1, 1, 1))
	got := Apply4x4(m, Vec3{0, 0, 0})
	want := Vec3{2, 2, 2}
	if got != want {
		t.Errorf("composed transform = %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	m := Translate4(3, -2, 5).Multiply(Scale4(2, 4, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular for a non-singular matrix")
	}
	p := Vec3{7, 11, -3}
	roundTrip := Apply4x4(inv, Apply4x4(m, p))
	const eps = 1e-9
	if absf(roundTrip.X-p.X) > eps || absf(roundTrip.Y-p.Y) > eps || absf(roundTrip.Z-p.Z) > eps {
		t.Errorf("round trip through Invert = %v, want %v", roundTrip, p)
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale4(0, 1, 1)
	if _, ok := m.Invert(); ok {
		t.Error("Invert() on a singular matrix reported success")
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
