// SPDX-License-Identifier: GPL-2.0-or-later

// Package shader translates GX materials into GLSL ES 3.00 programs.
//
// The generated sources share one uniform contract: the blocks
// ub_SceneParams, ub_MaterialParams and ub_DrawParams at bindings 0, 1 and 2
// in std140 layout, vertex attribute locations equal to the gx.Attr value,
// textures in the sampler array u_Texture and a single output o_Color.
package shader

import (
	"gxview/gx"

	"github.com/pkg/errors"
)

// Program is the generated source of one material.
type Program struct {
	Vert string
	Frag string
	// Samplers maps the u_Texture slot to the texture map bound to it.
	// It is not part of the source.
	Samplers []gx.TexMapID
}

// Key identifies programs with identical source.
func (p *Program) Key() string {
	return p.Vert + "\x00" + p.Frag
}

func checkCount(what string, n, min, max int) error {
	if n < min || n > max {
		return errors.Wrapf(ErrInvalidMaterialReference, "%d %s, want %d to %d", n, what, min, max)
	}
	return nil
}

func checkLimits(m *gx.Material) error {
	if err := checkCount("light channels", len(m.LightChannels), 0, gx.MaxLightChannels); err != nil {
		return err
	}
	if err := checkCount("texgens", len(m.TexGens), 0, gx.MaxTexGens); err != nil {
		return err
	}
	if err := checkCount("indirect stages", len(m.IndTexStages), 0, gx.MaxIndTexStages); err != nil {
		return err
	}
	if err := checkCount("tev stages", len(m.TevStages), 1, gx.MaxTevStages); err != nil {
		return err
	}
	return checkCount("swap tables", len(m.SwapTables), 0, gx.MaxSwapTables)
}

// Generate returns the vertex and fragment source reproducing m. It is a
// pure function of m.
func Generate(m *gx.Material) (*Program, error) {
	if err := checkLimits(m); err != nil {
		return nil, errors.WithMessagef(err, "material %q", m.Name)
	}
	if m.Rop.Blend.Mode == gx.BlendLogic {
		return nil, errors.Wrapf(ErrUnsupportedBlendMode, "material %q: logic op %d", m.Name, m.Rop.Blend.LogicOp)
	}
	vert, err := generateVertex(m)
	if err != nil {
		return nil, errors.WithMessagef(err, "material %q: vertex", m.Name)
	}
	frag, samplers, err := generateFragment(m)
	if err != nil {
		return nil, errors.WithMessagef(err, "material %q: fragment", m.Name)
	}
	return &Program{
		Vert:     vert,
		Frag:     frag,
		Samplers: samplers,
	}, nil
}
