// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// Mat4 is a row major 4x4 matrix.
type Mat4 struct {
	m [16]float32
}

func deg2rad(deg float32) float32 {
	return deg / 180 * math32.Pi
}

func Identity() Mat4 {
	return Mat4{
		m: [16]float32{
			1, 0, 0, 0, // 0 - 3
			0, 1, 0, 0, // 4 - 7
			0, 0, 1, 0, // 8 - 11
			0, 0, 0, 1, // 12 - 15
		},
	}
}

// Perspective is a right handed projection with depth mapped to [-1, 1].
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(deg2rad(fovy)/2)
	nf := 1 / (near - far)
	return Mat4{
		m: [16]float32{
			f / aspect, 0, 0, 0,
			0, f, 0, 0,
			0, 0, (far + near) * nf, 2 * far * near * nf,
			0, 0, -1, 0,
		},
	}
}

func (m *Mat4) At(row, col int) float32 {
	return m.m[row*4+col]
}

// Mul returns m*n.
func (m *Mat4) Mul(n *Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m.m[i*4+k] * n.m[k*4+j]
			}
			r.m[i*4+j] = s
		}
	}
	return r
}

// Columns returns the matrix in the column major order GLSL expects.
func (m *Mat4) Columns() [16]float32 {
	var c [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[j*4+i] = m.m[i*4+j]
		}
	}
	return c
}

// Rows3 drops the last row. Model matrices are affine.
func (m *Mat4) Rows3() Mat4x3 {
	var r Mat4x3
	copy(r.M[0][:], m.m[0:4])
	copy(r.M[1][:], m.m[4:8])
	copy(r.M[2][:], m.m[8:12])
	return r
}

func (m *Mat4) Translate(x, y, z float32) {
	// compute m*t
	n := [16]float32{
		m.m[0], m.m[1], m.m[2], x*m.m[0] + y*m.m[1] + z*m.m[2] + m.m[3],
		m.m[4], m.m[5], m.m[6], x*m.m[4] + y*m.m[5] + z*m.m[6] + m.m[7],
		m.m[8], m.m[9], m.m[10], x*m.m[8] + y*m.m[9] + z*m.m[10] + m.m[11],
		m.m[12], m.m[13], m.m[14], x*m.m[12] + y*m.m[13] + z*m.m[14] + m.m[15],
	}
	m.m = n
}

func (m *Mat4) RotateX(degree float32) {
	sin, cos := math32.Sincos(deg2rad(degree))
	n := [16]float32{
		m.m[0], cos*m.m[1] + sin*m.m[2], -sin*m.m[1] + cos*m.m[2], m.m[3],
		m.m[4], cos*m.m[5] + sin*m.m[6], -sin*m.m[5] + cos*m.m[6], m.m[7],
		m.m[8], cos*m.m[9] + sin*m.m[10], -sin*m.m[9] + cos*m.m[10], m.m[11],
		m.m[12], cos*m.m[13] + sin*m.m[14], -sin*m.m[13] + cos*m.m[14], m.m[15],
	}
	m.m = n
}

func (m *Mat4) RotateY(degree float32) {
	sin, cos := math32.Sincos(deg2rad(degree))
	n := [16]float32{
		cos*m.m[0] - sin*m.m[2], m.m[1], sin*m.m[0] + cos*m.m[2], m.m[3],
		cos*m.m[4] - sin*m.m[6], m.m[5], sin*m.m[4] + cos*m.m[6], m.m[7],
		cos*m.m[8] - sin*m.m[10], m.m[9], sin*m.m[8] + cos*m.m[10], m.m[11],
		cos*m.m[12] - sin*m.m[14], m.m[13], sin*m.m[12] + cos*m.m[14], m.m[15],
	}
	m.m = n
}

func (m *Mat4) Scale(x, y, z float32) {
	n := [16]float32{
		x * m.m[0], y * m.m[1], z * m.m[2], m.m[3],
		x * m.m[4], y * m.m[5], z * m.m[6], m.m[7],
		x * m.m[8], y * m.m[9], z * m.m[10], m.m[11],
		x * m.m[12], y * m.m[13], z * m.m[14], m.m[15],
	}
	m.m = n
}
