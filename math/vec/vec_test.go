// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestVFromA(t *testing.T) {
	v := VFromA([3]float32{1, 2, 3})
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("VFromA = %v", v)
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}, {-2, -1, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
}

func TestAddSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Add(NULL, v); got != v {
		t.Errorf("Adding a null vector changed the vector")
	}
	if got, want := Add(v, v), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
	if got := Sub(v, NULL); got != v {
		t.Errorf("Subtracting a null vector changed the vector")
	}
	if got := Sub(v, v); got != NULL {
		t.Errorf("Sub(%v,%v) = %v want null vector", v, v, got)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got, want := v.Scale(0.5), (Vec3{0.5, -1, 1.5}); got != want {
		t.Errorf("%v.Scale(0.5) = %v want %v", v, got, want)
	}
	if got := v.Scale(0); got != NULL {
		t.Errorf("%v.Scale(0) = %v", v, got)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 4, 3}
	mi, ma := MinMax(a, b)
	if mi != (Vec3{-1, -2, 3}) || ma != (Vec3{1, 4, 3}) {
		t.Errorf("MinMax(%v,%v) = %v, %v", a, b, mi, ma)
	}
	if mi2, ma2 := MinMax(b, a); mi2 != mi || ma2 != ma {
		t.Errorf("MinMax is not symmetric: %v %v", mi2, ma2)
	}
}
