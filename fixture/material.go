// SPDX-License-Identifier: GPL-2.0-or-later

package fixture

import (
	"gxview/gx"
	"gxview/math"
	"gxview/shader"

	"github.com/pkg/errors"
)

type ColorChannel struct {
	Lighting bool   `yaml:"lighting"`
	Mat      string `yaml:"mat"` // reg or vtx
	Amb      string `yaml:"amb"`
}

type LightChannel struct {
	Color ColorChannel `yaml:"color"`
	Alpha ColorChannel `yaml:"alpha"`
}

type TexGen struct {
	Type       gx.TexGenType `yaml:"type"`
	Source     gx.TexGenSrc  `yaml:"source"`
	Matrix     *int          `yaml:"matrix"`      // TEXMTX index, identity if unset
	PostMatrix *int          `yaml:"post_matrix"` // PTTMTX index, identity if unset
	Normalize  bool          `yaml:"normalize"`
}

type IndTexStage struct {
	TexCoord gx.TexCoordID  `yaml:"tex_coord"`
	TexMap   gx.TexMapID    `yaml:"tex_map"`
	ScaleS   gx.IndTexScale `yaml:"scale_s"`
	ScaleT   gx.IndTexScale `yaml:"scale_t"`
}

type Indirect struct {
	Stage   gx.IndTexStageID  `yaml:"stage"`
	Format  gx.IndTexFormat   `yaml:"format"`
	Bias    gx.IndTexBiasSel  `yaml:"bias"`
	Alpha   gx.IndTexAlphaSel `yaml:"alpha"`
	Matrix  gx.IndTexMtxID    `yaml:"matrix"`
	WrapS   gx.IndTexWrap     `yaml:"wrap_s"`
	WrapT   gx.IndTexWrap     `yaml:"wrap_t"`
	AddPrev bool              `yaml:"add_prev"`
	OrigLOD bool              `yaml:"orig_lod"`
}

type TevStage struct {
	ColorIn    [4]gx.CC    `yaml:"color_in"`
	ColorOp    gx.TevOp    `yaml:"color_op"`
	ColorBias  gx.TevBias  `yaml:"color_bias"`
	ColorScale gx.TevScale `yaml:"color_scale"`
	ColorClamp bool        `yaml:"color_clamp"`
	ColorReg   gx.Register `yaml:"color_reg"`

	AlphaIn    [4]gx.CA    `yaml:"alpha_in"`
	AlphaOp    gx.TevOp    `yaml:"alpha_op"`
	AlphaBias  gx.TevBias  `yaml:"alpha_bias"`
	AlphaScale gx.TevScale `yaml:"alpha_scale"`
	AlphaClamp bool        `yaml:"alpha_clamp"`
	AlphaReg   gx.Register `yaml:"alpha_reg"`

	TexCoord   *gx.TexCoordID   `yaml:"tex_coord"`
	TexMap     *gx.TexMapID     `yaml:"tex_map"`
	Channel    *gx.RasChannelID `yaml:"channel"`
	KonstColor gx.KonstColorSel `yaml:"konst_color"`
	KonstAlpha gx.KonstAlphaSel `yaml:"konst_alpha"`
	RasSwap    int              `yaml:"ras_swap"`
	TexSwap    int              `yaml:"tex_swap"`
	Indirect   *Indirect        `yaml:"indirect"`
}

type AlphaTest struct {
	Op   string `yaml:"op"`
	A    string `yaml:"a"`
	RefA uint8  `yaml:"ref_a"`
	B    string `yaml:"b"`
	RefB uint8  `yaml:"ref_b"`
}

type Blend struct {
	Mode    string     `yaml:"mode"`
	Src     string     `yaml:"src"`
	Dst     string     `yaml:"dst"`
	LogicOp gx.LogicOp `yaml:"logic_op"`
}

type TexMtx struct {
	Scale     [2]float32 `yaml:"scale"`
	Rotation  float32    `yaml:"rotation"`
	Translate [2]float32 `yaml:"translate"`
}

type IndTexMtx struct {
	M        [2][3]float32 `yaml:"m"`
	ScaleExp int           `yaml:"scale_exp"`
}

// Material is a material record plus the uniform values that go with it.
type Material struct {
	Name          string         `yaml:"name"`
	Cull          string         `yaml:"cull"`
	LightChannels []LightChannel `yaml:"light_channels"`
	TexGens       []TexGen       `yaml:"tex_gens"`
	IndTexStages  []IndTexStage  `yaml:"ind_tex_stages"`
	TevStages     []TevStage     `yaml:"tev_stages"`
	// each entry is four channel names, e.g. "rgba" or "aaar"
	SwapTables []string  `yaml:"swap_tables"`
	AlphaTest  AlphaTest `yaml:"alpha_test"`
	Blend      Blend     `yaml:"blend"`
	DepthTest  *bool     `yaml:"depth_test"`
	DepthFunc  string    `yaml:"depth_func"`
	DepthWrite *bool     `yaml:"depth_write"`

	MatColors []Color     `yaml:"mat_colors"`
	AmbColors []Color     `yaml:"amb_colors"`
	Konst     []Color     `yaml:"konst"`
	Registers []Color     `yaml:"registers"`
	TexMtx    []TexMtx    `yaml:"tex_mtx"`
	IndTexMtx []IndTexMtx `yaml:"ind_tex_mtx"`
}

func lookup[T any](what, name string, def T, table map[string]T) (T, error) {
	if name == "" {
		return def, nil
	}
	v, ok := table[name]
	if !ok {
		return def, errors.Wrapf(ErrBadFixture, "unknown %s %q", what, name)
	}
	return v, nil
}

var (
	colorSrcs = map[string]gx.ColorSrc{"reg": gx.SrcReg, "vtx": gx.SrcVtx}
	cullModes = map[string]gx.CullMode{
		"none": gx.CullNone, "front": gx.CullFront, "back": gx.CullBack, "all": gx.CullAll,
	}
	compares = map[string]gx.CompareType{
		"never": gx.CompareNever, "less": gx.CompareLess, "equal": gx.CompareEqual,
		"lequal": gx.CompareLEqual, "greater": gx.CompareGreater, "nequal": gx.CompareNEqual,
		"gequal": gx.CompareGEqual, "always": gx.CompareAlways,
	}
	alphaOps = map[string]gx.AlphaOp{
		"and": gx.AlphaOpAnd, "or": gx.AlphaOpOr, "xor": gx.AlphaOpXor, "xnor": gx.AlphaOpXnor,
	}
	blendModes = map[string]gx.BlendMode{
		"none": gx.BlendNone, "blend": gx.BlendBlend, "logic": gx.BlendLogic, "subtract": gx.BlendSubtract,
	}
	blendFactors = map[string]gx.BlendFactor{
		"zero": gx.BlendZero, "one": gx.BlendOne,
		"src_color": gx.BlendSrcColor, "inv_src_color": gx.BlendInvSrcColor,
		"src_alpha": gx.BlendSrcAlpha, "inv_src_alpha": gx.BlendInvSrcAlpha,
		"dst_alpha": gx.BlendDstAlpha, "inv_dst_alpha": gx.BlendInvDstAlpha,
	}
	swapChans = map[rune]gx.TevColorChan{'r': gx.ChanR, 'g': gx.ChanG, 'b': gx.ChanB, 'a': gx.ChanA}
)

func (c ColorChannel) toGX() (gx.ColorChannel, error) {
	mat, err := lookup("color source", c.Mat, gx.SrcReg, colorSrcs)
	if err != nil {
		return gx.ColorChannel{}, err
	}
	amb, err := lookup("color source", c.Amb, gx.SrcReg, colorSrcs)
	return gx.ColorChannel{LightingEnabled: c.Lighting, MatColorSource: mat, AmbColorSource: amb}, err
}

func (s *TevStage) toGX() gx.TevStage {
	st := gx.TevStage{
		ColorInA: s.ColorIn[0], ColorInB: s.ColorIn[1], ColorInC: s.ColorIn[2], ColorInD: s.ColorIn[3],
		ColorOp: s.ColorOp, ColorBias: s.ColorBias, ColorScale: s.ColorScale,
		ColorClamp: s.ColorClamp, ColorReg: s.ColorReg,
		AlphaInA: s.AlphaIn[0], AlphaInB: s.AlphaIn[1], AlphaInC: s.AlphaIn[2], AlphaInD: s.AlphaIn[3],
		AlphaOp: s.AlphaOp, AlphaBias: s.AlphaBias, AlphaScale: s.AlphaScale,
		AlphaClamp: s.AlphaClamp, AlphaReg: s.AlphaReg,
		TexCoord:      gx.TexCoordNull,
		TexMap:        gx.TexMapNull,
		Channel:       gx.ColorNull,
		KonstColorSel: s.KonstColor,
		KonstAlphaSel: s.KonstAlpha,
		RasSwap:       s.RasSwap,
		TexSwap:       s.TexSwap,
	}
	if s.TexCoord != nil {
		st.TexCoord = *s.TexCoord
	}
	if s.TexMap != nil {
		st.TexMap = *s.TexMap
	}
	if s.Channel != nil {
		st.Channel = *s.Channel
	}
	if in := s.Indirect; in != nil {
		st.IndTexStage = in.Stage
		st.IndTexFormat = in.Format
		st.IndTexBias = in.Bias
		st.IndTexAlpha = in.Alpha
		st.IndTexMatrix = in.Matrix
		st.IndTexWrapS = in.WrapS
		st.IndTexWrapT = in.WrapT
		st.IndTexAddPrev = in.AddPrev
		st.IndTexUseOrigLOD = in.OrigLOD
	}
	return st
}

// GX converts the fixture into a material record. Only names are checked
// here, indices and counts are left to the shader generator.
func (m *Material) GX() (*gx.Material, error) {
	out := &gx.Material{Name: m.Name}
	var err error
	if out.CullMode, err = lookup("cull mode", m.Cull, gx.CullBack, cullModes); err != nil {
		return nil, err
	}
	for _, lc := range m.LightChannels {
		var c gx.LightChannel
		if c.Color, err = lc.Color.toGX(); err != nil {
			return nil, err
		}
		if c.Alpha, err = lc.Alpha.toGX(); err != nil {
			return nil, err
		}
		out.LightChannels = append(out.LightChannels, c)
	}
	for _, tg := range m.TexGens {
		g := gx.TexGen{
			Type:       tg.Type,
			Source:     tg.Source,
			Matrix:     gx.TexGenIdentity,
			Normalize:  tg.Normalize,
			PostMatrix: gx.PostTexMtxIdentity,
		}
		if tg.Matrix != nil {
			g.Matrix = gx.TexGenTexMtx0 + gx.TexGenMatrix(3*(*tg.Matrix))
		}
		if tg.PostMatrix != nil {
			g.PostMatrix = gx.PostTexMtx0 + gx.PostTexGenMatrix(3*(*tg.PostMatrix))
		}
		out.TexGens = append(out.TexGens, g)
	}
	for _, s := range m.IndTexStages {
		out.IndTexStages = append(out.IndTexStages, gx.IndTexStage{
			TexCoord: s.TexCoord, TexMap: s.TexMap, ScaleS: s.ScaleS, ScaleT: s.ScaleT,
		})
	}
	for i := range m.TevStages {
		out.TevStages = append(out.TevStages, m.TevStages[i].toGX())
	}
	for _, s := range m.SwapTables {
		var t gx.SwapTable
		if len(s) != 4 {
			return nil, errors.Wrapf(ErrBadFixture, "swap table %q", s)
		}
		for i, r := range s {
			c, ok := swapChans[r]
			if !ok {
				return nil, errors.Wrapf(ErrBadFixture, "swap table %q", s)
			}
			t[i] = c
		}
		out.SwapTables = append(out.SwapTables, t)
	}

	at := &out.AlphaTest
	if at.Op, err = lookup("alpha op", m.AlphaTest.Op, gx.AlphaOpAnd, alphaOps); err != nil {
		return nil, err
	}
	if at.CompareA, err = lookup("compare", m.AlphaTest.A, gx.CompareAlways, compares); err != nil {
		return nil, err
	}
	if at.CompareB, err = lookup("compare", m.AlphaTest.B, gx.CompareAlways, compares); err != nil {
		return nil, err
	}
	at.RefA, at.RefB = m.AlphaTest.RefA, m.AlphaTest.RefB

	rop := &out.Rop
	if rop.Blend.Mode, err = lookup("blend mode", m.Blend.Mode, gx.BlendNone, blendModes); err != nil {
		return nil, err
	}
	if rop.Blend.SrcFactor, err = lookup("blend factor", m.Blend.Src, gx.BlendOne, blendFactors); err != nil {
		return nil, err
	}
	if rop.Blend.DstFactor, err = lookup("blend factor", m.Blend.Dst, gx.BlendZero, blendFactors); err != nil {
		return nil, err
	}
	rop.Blend.LogicOp = m.Blend.LogicOp
	if rop.DepthFunc, err = lookup("compare", m.DepthFunc, gx.CompareLEqual, compares); err != nil {
		return nil, err
	}
	rop.DepthTest = m.DepthTest == nil || *m.DepthTest
	rop.DepthWrite = m.DepthWrite == nil || *m.DepthWrite
	return out, nil
}

func fill(dst [][4]float32, src []Color, what string) error {
	if len(src) > len(dst) {
		return errors.Wrapf(ErrBadFixture, "%d %s, at most %d", len(src), what, len(dst))
	}
	for i, c := range src {
		dst[i] = c
	}
	return nil
}

// Params returns the material uniform block for m.
func (m *Material) Params() (*shader.MaterialParams, error) {
	p := shader.NewMaterialParams()
	if err := fill(p.ColorMatReg[:], m.MatColors, "material colors"); err != nil {
		return nil, err
	}
	if err := fill(p.ColorAmbReg[:], m.AmbColors, "ambient colors"); err != nil {
		return nil, err
	}
	if err := fill(p.KonstColor[:], m.Konst, "konst colors"); err != nil {
		return nil, err
	}
	if err := fill(p.Color[:], m.Registers, "registers"); err != nil {
		return nil, err
	}
	if len(m.TexMtx) > len(p.TexMtx) {
		return nil, errors.Wrapf(ErrBadFixture, "%d texture matrices", len(m.TexMtx))
	}
	for i, t := range m.TexMtx {
		sx, sy := t.Scale[0], t.Scale[1]
		if sx == 0 && sy == 0 {
			sx, sy = 1, 1
		}
		p.TexMtx[i] = math.TexSRT(sx, sy, t.Rotation, t.Translate[0], t.Translate[1])
	}
	if len(m.IndTexMtx) > len(p.IndTexMtx) {
		return nil, errors.Wrapf(ErrBadFixture, "%d indirect matrices", len(m.IndTexMtx))
	}
	for i, t := range m.IndTexMtx {
		p.IndTexMtx[i] = math.IndTexMatrix(t.M, t.ScaleExp)
	}
	return p, nil
}
