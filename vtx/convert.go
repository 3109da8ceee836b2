// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"encoding/binary"

	"gxview/gx"
)

// Source data is big-endian. Packed vertices use the byte order of the host,
// which is what a vertex buffer upload expects.

func newConvert(al AttrLayout) convertFunc {
	if al.Color {
		return colorConvert(al.CompType)
	}
	switch al.Size / al.CompCount {
	case 2:
		return swap16
	case 4:
		return swap32
	}
	return copyBytes
}

func copyBytes(dst, src []byte) {
	copy(dst, src)
}

func swap16(dst, src []byte) {
	for i := 0; i+1 < len(src); i += 2 {
		binary.NativeEndian.PutUint16(dst[i:], binary.BigEndian.Uint16(src[i:]))
	}
}

func swap32(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		binary.NativeEndian.PutUint32(dst[i:], binary.BigEndian.Uint32(src[i:]))
	}
}

func expand4(v uint32) byte {
	return byte(v<<4 | v)
}

func expand5(v uint32) byte {
	return byte(v<<3 | v>>2)
}

func expand6(v uint32) byte {
	return byte(v<<2 | v>>4)
}

// colorConvert expands every color encoding to RGBA8.
func colorConvert(t gx.CompType) convertFunc {
	switch t {
	case gx.TypeRGB565:
		return func(dst, src []byte) {
			v := uint32(binary.BigEndian.Uint16(src))
			dst[0] = expand5(v >> 11 & 0x1F)
			dst[1] = expand6(v >> 5 & 0x3F)
			dst[2] = expand5(v & 0x1F)
			dst[3] = 0xFF
		}
	case gx.TypeRGB8, gx.TypeRGBX8:
		return func(dst, src []byte) {
			copy(dst[:3], src[:3])
			dst[3] = 0xFF
		}
	case gx.TypeRGBA4:
		return func(dst, src []byte) {
			v := uint32(binary.BigEndian.Uint16(src))
			dst[0] = expand4(v >> 12 & 0xF)
			dst[1] = expand4(v >> 8 & 0xF)
			dst[2] = expand4(v >> 4 & 0xF)
			dst[3] = expand4(v & 0xF)
		}
	case gx.TypeRGBA6:
		return func(dst, src []byte) {
			v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
			dst[0] = expand6(v >> 18 & 0x3F)
			dst[1] = expand6(v >> 12 & 0x3F)
			dst[2] = expand6(v >> 6 & 0x3F)
			dst[3] = expand6(v & 0x3F)
		}
	}
	return copyBytes
}
