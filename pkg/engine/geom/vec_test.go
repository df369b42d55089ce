package geom

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: 6}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 7, Z: 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec3{X: 3, Y: 3, Z: 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestVec3_DistanceXZIgnoresHeight(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 3, Y: 100, Z: 4}

	if got := a.DistanceXZ(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceXZ = %v, want 5 (Y must not contribute)", got)
	}

	want := math.Sqrt(9 + 10000 + 16)
	if got := a.DistanceTo(b); math.Abs(got-want) > 1e-9 {
		t.Errorf("DistanceTo = %v, want %v", got, want)
	}
}

func TestVec3_Length(t *testing.T) {
	v := Vec3{X: 2, Y: 3, Z: 6}
	if got := v.Length(); math.Abs(got-7) > 1e-9 {
		t.Errorf("Length = %v, want 7", got)
	}
}
