// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

type Texture struct {
	id uint32
}

func deleteTexture(id uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &id)
	})
}

// NewTexture2D uploads a RGBA8 image with nearest filtering.
func NewTexture2D(width, height int32, rgba []byte) *Texture {
	t := &Texture{}
	gl.GenTextures(1, &t.id)
	runtime.AddCleanup(t, deleteTexture, t.id)
	t.Bind()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	return t
}

// Checker returns a size x size checkerboard of two RGBA colors.
func Checker(size int, a, b [4]byte) []byte {
	img := make([]byte, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x+y)%2 == 1 {
				c = b
			}
			img = append(img, c[:]...)
		}
	}
	return img
}

func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// BindUnit binds t to texture unit u.
func (t *Texture) BindUnit(u int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(u))
	t.Bind()
}
