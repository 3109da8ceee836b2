// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// Mat4x3 is a 3x4 affine matrix stored as three rows, the layout of the
// GLSL struct of the same name.
type Mat4x3 struct {
	M [3][4]float32
}

// Mat4x2 holds the first two rows of an affine matrix.
type Mat4x2 struct {
	M [2][4]float32
}

func Identity4x3() Mat4x3 {
	return Mat4x3{
		M: [3][4]float32{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
		},
	}
}

// TexSRT builds a texture matrix that scales, then rotates around the
// texture center, then translates. rotation is in degrees.
func TexSRT(scaleS, scaleT, rotation, transS, transT float32) Mat4x3 {
	sin, cos := math32.Sincos(deg2rad(rotation))
	return Mat4x3{
		M: [3][4]float32{
			{scaleS * cos, -scaleT * sin, 0, transS + 0.5 - 0.5*(scaleS*cos-scaleT*sin)},
			{scaleS * sin, scaleT * cos, 0, transT + 0.5 - 0.5*(scaleS*sin+scaleT*cos)},
			{0, 0, 1, 0},
		},
	}
}

// Apply transforms the point (x, y, z, 1).
func (m *Mat4x3) Apply(x, y, z float32) (float32, float32, float32) {
	r := func(i int) float32 {
		return m.M[i][0]*x + m.M[i][1]*y + m.M[i][2]*z + m.M[i][3]
	}
	return r(0), r(1), r(2)
}

// IndTexMatrix builds an indirect texture matrix from the hardware 2x3
// mantissas and the shared scale exponent.
func IndTexMatrix(mtx [2][3]float32, scaleExp int) Mat4x2 {
	s := math32.Pow(2, float32(scaleExp))
	return Mat4x2{
		M: [2][4]float32{
			{mtx[0][0] * s, mtx[0][1] * s, mtx[0][2] * s, 0},
			{mtx[1][0] * s, mtx[1][1] * s, mtx[1][2] * s, 0},
		},
	}
}
