// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"

	"github.com/chewxy/math32"
)

const e = 1e-6

func eq(a, b [16]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > e {
			return false
		}
	}
	return true
}

func TestTranslateScale(t *testing.T) {
	m := Identity()
	m.Translate(2, 3, 5)
	m.Scale(2, 2, 2)
	if !eq(m.m, [16]float32{
		2, 0, 0, 2,
		0, 2, 0, 3,
		0, 0, 2, 5,
		0, 0, 0, 1,
	}) {
		t.Errorf("Translate(2,3,5).Scale(2,2,2) = %v", m.m)
	}
}

func TestRotate(t *testing.T) {
	x := Identity()
	x.RotateX(90)
	if !eq(x.m, [16]float32{
		1, 0, 0, 0,
		0, 0, -1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("RotateX(90) = %v", x.m)
	}
	y := Identity()
	y.RotateY(90)
	if !eq(y.m, [16]float32{
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("RotateY(90) = %v", y.m)
	}
}

func TestMulAndColumns(t *testing.T) {
	a := Identity()
	a.Translate(1, 2, 3)
	b := Identity()
	b.Scale(2, 3, 4)
	m := a.Mul(&b)
	if !eq(m.Columns(), [16]float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		1, 2, 3, 1,
	}) {
		t.Errorf("columns = %v", m.Columns())
	}
	r := m.Rows3()
	if r.M[2] != [4]float32{0, 0, 4, 3} {
		t.Errorf("Rows3 last row = %v", r.M[2])
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(90, 2, 1, 3)
	if math32.Abs(p.At(0, 0)-0.5) > e || math32.Abs(p.At(1, 1)-1) > e {
		t.Errorf("focal terms %v %v", p.At(0, 0), p.At(1, 1))
	}
	// the near plane maps to -1, the far plane to 1
	for _, z := range []struct{ in, want float32 }{{-1, -1}, {-3, 1}} {
		clipZ := p.At(2, 2)*z.in + p.At(2, 3)
		clipW := p.At(3, 2) * z.in
		if got := clipZ / clipW; math32.Abs(got-z.want) > e {
			t.Errorf("depth of z=%v = %v, want %v", z.in, got, z.want)
		}
	}
}
