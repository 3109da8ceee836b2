// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import "gxview/gx"

func supportedPrimitive(p gx.Primitive) bool {
	switch p {
	case gx.PrimTriangles, gx.PrimTriangleStrip, gx.PrimTriangleFan,
		gx.PrimQuads, gx.PrimQuadStrip:
		return true
	}
	return false
}

// wholePrimitives reports whether n vertices form complete primitives of a
// list topology. Strips and fans accept any count.
func wholePrimitives(p gx.Primitive, n int) bool {
	switch p {
	case gx.PrimTriangles:
		return n%3 == 0
	case gx.PrimQuads:
		return n%4 == 0
	case gx.PrimQuadStrip:
		return n%2 == 0
	}
	return true
}

// appendTriangles flattens one draw call of n vertices starting at vertex
// base into a triangle list. It returns the new indices and the number of
// triangles added.
func appendTriangles(idx []uint16, p gx.Primitive, base, n int) ([]uint16, int) {
	v := func(i int) uint16 {
		return uint16(base + i)
	}
	tris := 0
	switch p {
	case gx.PrimTriangles:
		for i := 0; i+2 < n; i += 3 {
			idx = append(idx, v(i), v(i+1), v(i+2))
			tris++
		}
	case gx.PrimTriangleStrip:
		for k := 2; k < n; k++ {
			// keep the winding of every other triangle
			if k%2 == 0 {
				idx = append(idx, v(k-2), v(k-1), v(k))
			} else {
				idx = append(idx, v(k-1), v(k-2), v(k))
			}
			tris++
		}
	case gx.PrimTriangleFan:
		for k := 2; k < n; k++ {
			idx = append(idx, v(0), v(k-1), v(k))
			tris++
		}
	case gx.PrimQuads:
		for i := 0; i+3 < n; i += 4 {
			idx = append(idx, v(i), v(i+1), v(i+2), v(i+2), v(i+3), v(i))
			tris += 2
		}
	case gx.PrimQuadStrip:
		for i := 0; i+3 < n; i += 2 {
			idx = append(idx, v(i), v(i+1), v(i+3), v(i+3), v(i+2), v(i))
			tris += 2
		}
	}
	return idx, tris
}
