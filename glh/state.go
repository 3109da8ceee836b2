// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"gxview/gx"
	"gxview/shader"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// blendFactor maps a GX factor to GL. The color factors refer to the
// other side of the equation: as a source factor SrcColor reads the
// destination color and as a destination factor it reads the source color.
func blendFactor(f gx.BlendFactor, src bool) uint32 {
	switch f {
	case gx.BlendOne:
		return gl.ONE
	case gx.BlendSrcColor:
		if src {
			return gl.DST_COLOR
		}
		return gl.SRC_COLOR
	case gx.BlendInvSrcColor:
		if src {
			return gl.ONE_MINUS_DST_COLOR
		}
		return gl.ONE_MINUS_SRC_COLOR
	case gx.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case gx.BlendInvSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gx.BlendDstAlpha:
		return gl.DST_ALPHA
	case gx.BlendInvDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	}
	return gl.ZERO
}

func compareFunc(c gx.CompareType) uint32 {
	return [...]uint32{
		gx.CompareNever:   gl.NEVER,
		gx.CompareLess:    gl.LESS,
		gx.CompareEqual:   gl.EQUAL,
		gx.CompareLEqual:  gl.LEQUAL,
		gx.CompareGreater: gl.GREATER,
		gx.CompareNEqual:  gl.NOTEQUAL,
		gx.CompareGEqual:  gl.GEQUAL,
		gx.CompareAlways:  gl.ALWAYS,
	}[c]
}

func cullFace(c gx.CullMode) (uint32, bool) {
	switch c {
	case gx.CullFront:
		return gl.FRONT, true
	case gx.CullBack:
		return gl.BACK, true
	case gx.CullAll:
		return gl.FRONT_AND_BACK, true
	}
	return 0, false
}

// ApplyRenderState sets the fixed pipeline state. rs comes from
// shader.RenderStateFor and is known to be valid.
func ApplyRenderState(rs shader.RenderState) {
	if face, ok := cullFace(rs.Cull); ok {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(face)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if rs.Blend {
		gl.Enable(gl.BLEND)
		eq := uint32(gl.FUNC_ADD)
		if rs.BlendEquation == shader.BlendReverseSubtract {
			eq = gl.FUNC_REVERSE_SUBTRACT
		}
		gl.BlendEquation(eq)
		gl.BlendFunc(blendFactor(rs.SrcFactor, true), blendFactor(rs.DstFactor, false))
	} else {
		gl.Disable(gl.BLEND)
	}
	if rs.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(compareFunc(rs.DepthFunc))
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(rs.DepthWrite)
}
