// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"fmt"
	"strconv"
	"strings"

	"gxview/gx"

	"github.com/pkg/errors"
)

type fragmentGen struct {
	m        *gx.Material
	samplers []gx.TexMapID
	body     strings.Builder
}

func (g *fragmentGen) line(format string, args ...interface{}) {
	if format == "" {
		g.body.WriteByte('\n')
		return
	}
	g.body.WriteString("    ")
	fmt.Fprintf(&g.body, format, args...)
	g.body.WriteByte('\n')
}

// sampler returns the sampler slot of a texture map. Slots are handed out in
// order of first use so the source does not depend on the map numbers.
func (g *fragmentGen) sampler(id gx.TexMapID) (expr, error) {
	if id < 0 || id >= gx.TexMapMax {
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "texture map %d", id)
	}
	slot := -1
	for i, s := range g.samplers {
		if s == id {
			slot = i
			break
		}
	}
	if slot < 0 {
		slot = len(g.samplers)
		g.samplers = append(g.samplers, id)
	}
	return ident(SamplerArray + "[" + strconv.Itoa(slot) + "]"), nil
}

// texCoord reads the interpolated coordinate of texgen n. 3x4 matrices
// produce a projective coordinate.
func (g *fragmentGen) texCoord(n gx.TexCoordID) (expr, error) {
	if n < 0 || int(n) >= len(g.m.TexGens) {
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "texcoord %d with %d texgens", n, len(g.m.TexGens))
	}
	v := ident("v_TexCoord" + strconv.Itoa(int(n)))
	if g.m.TexGens[n].Type == gx.TexGenMtx3x4 {
		return op("/", field{v, "xy"}, field{v, "z"}), nil
	}
	return field{v, "xy"}, nil
}

func textureSize(sampler expr) expr {
	return fn("vec2", fn("textureSize", sampler, ident("0")))
}

func indTexScale(s gx.IndTexScale) (float64, error) {
	if s < gx.IndTexScale1 || s > gx.IndTexScale256 {
		return 0, errors.Wrapf(ErrInvalidMaterialReference, "indirect scale %d", s)
	}
	return 1 / float64(int(1)<<s), nil
}

// indirect emits t_IndTexCoordN for every indirect stage. The values are
// texel offsets in [0, 255].
func (g *fragmentGen) indirect() error {
	for i, ind := range g.m.IndTexStages {
		smp, err := g.sampler(ind.TexMap)
		if err != nil {
			return errors.WithMessagef(err, "indirect stage %d", i)
		}
		coord, err := g.texCoord(ind.TexCoord)
		if err != nil {
			return errors.WithMessagef(err, "indirect stage %d", i)
		}
		s, err := indTexScale(ind.ScaleS)
		if err != nil {
			return err
		}
		t, err := indTexScale(ind.ScaleT)
		if err != nil {
			return err
		}
		if s != 1 || t != 1 {
			coord = op("*", coord, fn("vec2", float(s), float(t)))
		}
		g.line("vec3 t_IndTexCoord%d = 255.0 * texture(%s, %s).abg;", i, glsl(smp), glsl(coord))
	}
	return nil
}

func indBias(b gx.IndTexBiasSel) (expr, error) {
	const v = -128
	switch b {
	case gx.IndTexBiasNone:
		return nil, nil
	case gx.IndTexBiasS:
		return fn("vec3", float(v), float(0), float(0)), nil
	case gx.IndTexBiasT:
		return fn("vec3", float(0), float(v), float(0)), nil
	case gx.IndTexBiasST:
		return fn("vec3", float(v), float(v), float(0)), nil
	case gx.IndTexBiasU, gx.IndTexBiasSU, gx.IndTexBiasTU, gx.IndTexBiasSTU:
		return nil, errors.Wrapf(ErrUnsupportedIndirectMode, "bias select %d", b)
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "indirect bias select %d", b)
}

// indOffset is the texel offset an indirect stage adds to a TEV stage
// coordinate, or nil.
func (g *fragmentGen) indOffset(st *gx.TevStage) (expr, error) {
	var mtx int
	switch st.IndTexMatrix {
	case gx.IndTexMtxOff:
		return nil, nil
	case gx.IndTexMtx0, gx.IndTexMtx1, gx.IndTexMtx2:
		mtx = int(st.IndTexMatrix - gx.IndTexMtx0)
	case gx.IndTexMtxS0, gx.IndTexMtxS1, gx.IndTexMtxS2, gx.IndTexMtxT0, gx.IndTexMtxT1, gx.IndTexMtxT2:
		return nil, errors.Wrapf(ErrUnsupportedIndirectMode, "dynamic matrix %d", st.IndTexMatrix)
	default:
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "indirect matrix %d", st.IndTexMatrix)
	}
	if st.IndTexStage < 0 || int(st.IndTexStage) >= len(g.m.IndTexStages) {
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "indirect stage %d with %d declared", st.IndTexStage, len(g.m.IndTexStages))
	}
	if st.IndTexFormat != gx.IndTexFormat8 {
		return nil, errors.Wrapf(ErrUnsupportedIndirectMode, "format %d", st.IndTexFormat)
	}
	if st.IndTexAlpha != gx.IndTexAlphaOff {
		return nil, errors.Wrapf(ErrUnsupportedIndirectMode, "alpha select %d", st.IndTexAlpha)
	}
	var c expr = ident("t_IndTexCoord" + strconv.Itoa(int(st.IndTexStage)))
	b, err := indBias(st.IndTexBias)
	if err != nil {
		return nil, err
	}
	if b != nil {
		c = op("+", c, b)
	}
	return fn("Mul", ident("u_IndTexMtx["+strconv.Itoa(mtx)+"]"), fn("vec4", c, float(0))), nil
}

// wrapMask keeps a coordinate component (1) or wraps it to zero (0).
func wrapMask(w gx.IndTexWrap) (float64, error) {
	switch w {
	case gx.IndTexWrapOff:
		return 1, nil
	case gx.IndTexWrap0:
		return 0, nil
	case gx.IndTexWrap256, gx.IndTexWrap128, gx.IndTexWrap64, gx.IndTexWrap32, gx.IndTexWrap16:
		return 0, errors.Wrapf(ErrUnsupportedIndirectMode, "wrap %d", w)
	}
	return 0, errors.Wrapf(ErrInvalidMaterialReference, "indirect wrap %d", w)
}

// stageTexCoord updates t_TexCoord, in texels of the stage's texture.
func (g *fragmentGen) stageTexCoord(st *gx.TevStage, smp expr) error {
	if st.TexCoord == gx.TexCoordNull {
		return nil
	}
	base, err := g.texCoord(st.TexCoord)
	if err != nil {
		return err
	}
	var c expr = op("*", base, textureSize(smp))
	ms, err := wrapMask(st.IndTexWrapS)
	if err != nil {
		return err
	}
	mt, err := wrapMask(st.IndTexWrapT)
	if err != nil {
		return err
	}
	if ms != 1 || mt != 1 {
		c = op("*", c, fn("vec2", float(ms), float(mt)))
	}
	off, err := g.indOffset(st)
	if err != nil {
		return err
	}
	if off != nil {
		c = op("+", c, off)
	}
	if st.IndTexAddPrev {
		g.line("t_TexCoord += %s;", glsl(c))
	} else {
		g.line("t_TexCoord = %s;", glsl(c))
	}
	return nil
}

func (g *fragmentGen) swapTable(i int, what string) (string, error) {
	t, ok := g.m.SwapTable(i)
	if !ok {
		return "", errors.Wrapf(ErrInvalidMaterialReference, "%s swap table %d", what, i)
	}
	return swizzle(t)
}

func (g *fragmentGen) stage(n int, st *gx.TevStage) error {
	cc := [4]gx.CC{st.ColorInA, st.ColorInB, st.ColorInC, st.ColorInD}
	ca := [4]gx.CA{st.AlphaInA, st.AlphaInB, st.AlphaInC, st.AlphaInD}

	g.line("")
	g.line("// stage %d", n)
	if usesTexture(cc, ca) {
		if st.TexMap == gx.TexMapNull {
			return errors.Wrap(ErrInvalidMaterialReference, "texture read without texture map")
		}
		smp, err := g.sampler(st.TexMap)
		if err != nil {
			return err
		}
		if err := g.stageTexCoord(st, smp); err != nil {
			return err
		}
		swz, err := g.swapTable(st.TexSwap, "texture")
		if err != nil {
			return err
		}
		g.line("t_TexColor = texture(%s, t_TexCoord / %s).%s;", glsl(smp), glsl(textureSize(smp)), swz)
	}
	if usesRaster(cc, ca) {
		ras, err := rasChannel(st.Channel, len(g.m.LightChannels))
		if err != nil {
			return err
		}
		swz, err := g.swapTable(st.RasSwap, "raster")
		if err != nil {
			return err
		}
		g.line("t_RasColor = %s.%s;", glsl(ras), swz)
	}

	for i, name := range [4]string{"A", "B", "C", "D"} {
		c, err := colorIn(cc[i], st.KonstColorSel)
		if err != nil {
			return errors.WithMessagef(err, "color input %s", name)
		}
		a, err := alphaIn(ca[i], st.KonstAlphaSel)
		if err != nil {
			return errors.WithMessagef(err, "alpha input %s", name)
		}
		d := i == 3
		g.line("t_Tev%s = vec4(%s, %s);", name, glsl(c.wrapped(d)), glsl(a.wrapped(d)))
	}

	dstC, err := regName(st.ColorReg)
	if err != nil {
		return err
	}
	dstA, err := regName(st.AlphaReg)
	if err != nil {
		return err
	}
	cv, err := combine(st.ColorOp, st.ColorBias, st.ColorScale, st.ColorClamp, false)
	if err != nil {
		return err
	}
	av, err := combine(st.AlphaOp, st.AlphaBias, st.AlphaScale, st.AlphaClamp, true)
	if err != nil {
		return err
	}
	g.line("%s.rgb = %s;", dstC, glsl(cv))
	g.line("%s.a = %s;", dstA, glsl(av))
	return nil
}

func (g *fragmentGen) alphaTest() error {
	t := g.m.AlphaTest
	if pass, ok := foldAlphaTest(t); ok {
		if !pass {
			g.line("discard;")
		}
		return nil
	}
	a, err := alphaCompare(t.CompareA, t.RefA)
	if err != nil {
		return err
	}
	b, err := alphaCompare(t.CompareB, t.RefB)
	if err != nil {
		return err
	}
	o, err := alphaOp(t.Op)
	if err != nil {
		return err
	}
	g.line("float t_AlphaQ = TevQuant(t_PixelOut.a);")
	g.line("if (!%s)", glsl(op(o, a, b)))
	g.line("    discard;")
	return nil
}

func generateFragment(m *gx.Material) (string, []gx.TexMapID, error) {
	g := &fragmentGen{m: m}
	g.line("vec4 t_ColorPrev = u_Color[0];")
	g.line("vec4 t_Color0 = u_Color[1];")
	g.line("vec4 t_Color1 = u_Color[2];")
	g.line("vec4 t_Color2 = u_Color[3];")
	g.line("vec4 t_TexColor = vec4(0.0);")
	g.line("vec4 t_RasColor = vec4(0.0);")
	g.line("vec2 t_TexCoord = vec2(0.0);")
	g.line("vec4 t_TevA, t_TevB, t_TevC, t_TevD;")
	if err := g.indirect(); err != nil {
		return "", nil, err
	}
	for i := range m.TevStages {
		if err := g.stage(i, &m.TevStages[i]); err != nil {
			return "", nil, errors.WithMessagef(err, "tev stage %d", i)
		}
	}
	g.line("")
	g.line("vec4 t_PixelOut = TevOverflow(t_ColorPrev);")
	if err := g.alphaTest(); err != nil {
		return "", nil, errors.WithMessage(err, "alpha test")
	}
	g.line("o_Color = t_PixelOut;")

	var b strings.Builder
	b.WriteString(glslVersion)
	b.WriteString(commonPrelude)
	b.WriteString(fragmentPrelude)
	b.WriteByte('\n')
	writeVaryings(&b, "in", m)
	b.WriteString("out vec4 o_Color;\n")
	b.WriteString("\nvoid main() {\n")
	b.WriteString(g.body.String())
	b.WriteString("}\n")
	return b.String(), g.samplers, nil
}
