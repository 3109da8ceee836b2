// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"

	"gxview/math/vec"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestTexSRT(t *testing.T) {
	tests := []struct {
		name                   string
		sS, sT, rot, tS, tT    float32
		inS, inT, wantS, wantT float32
	}{
		{"identity", 1, 1, 0, 0, 0, 0.25, 0.75, 0.25, 0.75},
		{"center is fixed", 2, 3, 37, 0, 0, 0.5, 0.5, 0.5, 0.5},
		{"scale", 2, 2, 0, 0, 0, 1, 1, 1.5, 1.5},
		{"translate", 1, 1, 0, 0.25, -0.5, 0, 0, 0.25, -0.5},
		{"quarter turn", 1, 1, 90, 0, 0, 1, 0.5, 0.5, 1},
	}
	for _, tc := range tests {
		m := TexSRT(tc.sS, tc.sT, tc.rot, tc.tS, tc.tT)
		s, tt, q := m.Apply(tc.inS, tc.inT, 1)
		if !near(s, tc.wantS) || !near(tt, tc.wantT) || !near(q, 1) {
			t.Errorf("%s: (%v, %v) -> (%v, %v, %v), want (%v, %v, 1)",
				tc.name, tc.inS, tc.inT, s, tt, q, tc.wantS, tc.wantT)
		}
	}
}

func TestIndTexMatrix(t *testing.T) {
	m := IndTexMatrix([2][3]float32{{0.5, 0, 0}, {0, -0.25, 1}}, 2)
	want := [2][4]float32{{2, 0, 0, 0}, {0, -1, 4, 0}}
	if m.M != want {
		t.Errorf("IndTexMatrix = %v, want %v", m.M, want)
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatalf("zero Bounds not empty")
	}
	b.Add(vec.Vec3{X: 1, Y: 2, Z: 3})
	b.Add(vec.Vec3{X: -1, Y: 4, Z: 3})
	b.Add(vec.Vec3{Z: -3})
	if b.Min != (vec.Vec3{X: -1, Z: -3}) || b.Max != (vec.Vec3{X: 1, Y: 4, Z: 3}) {
		t.Errorf("got %v %v", b.Min, b.Max)
	}
	if c := b.Center(); c != (vec.Vec3{Y: 2}) {
		t.Errorf("Center() = %v", c)
	}
	if r := b.Radius(); !near(r, math32.Sqrt(4+16+36)/2) {
		t.Errorf("Radius() = %v", r)
	}
}
