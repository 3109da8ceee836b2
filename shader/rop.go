// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"gxview/gx"

	"github.com/pkg/errors"
)

type BlendEquation int

const (
	BlendAdd BlendEquation = iota
	// destination minus source
	BlendReverseSubtract
)

// RenderState is the fixed pipeline state of a material the generated
// program does not cover. It holds GX values, the host maps them to its API.
type RenderState struct {
	Cull          gx.CullMode
	Blend         bool
	BlendEquation BlendEquation
	SrcFactor     gx.BlendFactor
	DstFactor     gx.BlendFactor
	DepthTest     bool
	DepthFunc     gx.CompareType
	DepthWrite    bool
}

func RenderStateFor(m *gx.Material) (RenderState, error) {
	rs := RenderState{
		Cull:       m.CullMode,
		DepthTest:  m.Rop.DepthTest,
		DepthFunc:  m.Rop.DepthFunc,
		DepthWrite: m.Rop.DepthWrite,
	}
	if m.CullMode < gx.CullNone || m.CullMode > gx.CullAll {
		return rs, errors.Wrapf(ErrInvalidMaterialReference, "cull mode %d", m.CullMode)
	}
	if m.Rop.DepthFunc < gx.CompareNever || m.Rop.DepthFunc > gx.CompareAlways {
		return rs, errors.Wrapf(ErrInvalidMaterialReference, "depth func %d", m.Rop.DepthFunc)
	}
	b := m.Rop.Blend
	switch b.Mode {
	case gx.BlendNone:
	case gx.BlendBlend:
		for _, f := range []gx.BlendFactor{b.SrcFactor, b.DstFactor} {
			if f < gx.BlendZero || f > gx.BlendInvDstAlpha {
				return rs, errors.Wrapf(ErrInvalidMaterialReference, "blend factor %d", f)
			}
		}
		rs.Blend = true
		rs.SrcFactor = b.SrcFactor
		rs.DstFactor = b.DstFactor
	case gx.BlendSubtract:
		// factors are ignored by the hardware in this mode
		rs.Blend = true
		rs.BlendEquation = BlendReverseSubtract
		rs.SrcFactor = gx.BlendOne
		rs.DstFactor = gx.BlendOne
	case gx.BlendLogic:
		return rs, errors.Wrapf(ErrUnsupportedBlendMode, "logic op %d", b.LogicOp)
	default:
		return rs, errors.Wrapf(ErrInvalidMaterialReference, "blend mode %d", b.Mode)
	}
	return rs, nil
}
