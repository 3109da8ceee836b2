// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"fmt"
	"strconv"
	"strings"

	"gxview/gx"

	"github.com/pkg/errors"
)

// attrDecl is the GLSL input of every vertex attribute, indexed by gx.Attr.
var attrDecl = [gx.AttrMax]struct {
	typ, name string
}{
	gx.AttrPnMtxIdx:   {"float", "a_PnMtxIdx"},
	gx.AttrTex0MtxIdx: {"float", "a_Tex0MtxIdx"},
	gx.AttrTex1MtxIdx: {"float", "a_Tex1MtxIdx"},
	gx.AttrTex2MtxIdx: {"float", "a_Tex2MtxIdx"},
	gx.AttrTex3MtxIdx: {"float", "a_Tex3MtxIdx"},
	gx.AttrTex4MtxIdx: {"float", "a_Tex4MtxIdx"},
	gx.AttrTex5MtxIdx: {"float", "a_Tex5MtxIdx"},
	gx.AttrTex6MtxIdx: {"float", "a_Tex6MtxIdx"},
	gx.AttrTex7MtxIdx: {"float", "a_Tex7MtxIdx"},
	gx.AttrPos:        {"vec3", "a_Position"},
	gx.AttrNrm:        {"vec3", "a_Normal"},
	gx.AttrClr0:       {"vec4", "a_Color0"},
	gx.AttrClr1:       {"vec4", "a_Color1"},
	gx.AttrTex0:       {"vec2", "a_Tex0"},
	gx.AttrTex1:       {"vec2", "a_Tex1"},
	gx.AttrTex2:       {"vec2", "a_Tex2"},
	gx.AttrTex3:       {"vec2", "a_Tex3"},
	gx.AttrTex4:       {"vec2", "a_Tex4"},
	gx.AttrTex5:       {"vec2", "a_Tex5"},
	gx.AttrTex6:       {"vec2", "a_Tex6"},
	gx.AttrTex7:       {"vec2", "a_Tex7"},
}

type vertexGen struct {
	m        *gx.Material
	used     [gx.AttrMax]bool
	binormal bool
	tangent  bool
	body     strings.Builder
}

func (g *vertexGen) attr(a gx.Attr) expr {
	g.used[a] = true
	return ident(attrDecl[a].name)
}

func (g *vertexGen) line(format string, args ...interface{}) {
	g.body.WriteString("    ")
	fmt.Fprintf(&g.body, format, args...)
	g.body.WriteByte('\n')
}

// channelSource selects the register or the vertex color for one half of a
// light channel. comp is "rgb" or "a".
func (g *vertexGen) channelSource(src gx.ColorSrc, reg string, i int, comp string) (expr, error) {
	switch src {
	case gx.SrcReg:
		return ident(reg + "[" + strconv.Itoa(i) + "]." + comp), nil
	case gx.SrcVtx:
		return field{g.attr(gx.AttrClr0 + gx.Attr(i)), comp}, nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "light channel %d color source %d", i, src)
}

func (g *vertexGen) channel(c gx.ColorChannel, i int, comp string) (expr, error) {
	mat, err := g.channelSource(c.MatColorSource, "u_ColorMatReg", i, comp)
	if err != nil {
		return nil, err
	}
	if !c.LightingEnabled {
		return mat, nil
	}
	amb, err := g.channelSource(c.AmbColorSource, "u_ColorAmbReg", i, comp)
	if err != nil {
		return nil, err
	}
	return op("*", mat, fn("clamp", amb, float(0), float(1))), nil
}

func (g *vertexGen) texGenSource(src gx.TexGenSrc, n int) (expr, error) {
	one := float(1)
	switch {
	case src == gx.TexGenSrcPos:
		return fn("vec4", g.attr(gx.AttrPos), one), nil
	case src == gx.TexGenSrcNrm:
		return fn("vec4", g.attr(gx.AttrNrm), one), nil
	case src == gx.TexGenSrcBinrm:
		g.binormal = true
		return fn("vec4", ident("a_Binormal"), one), nil
	case src == gx.TexGenSrcTangent:
		g.tangent = true
		return fn("vec4", ident("a_Tangent"), one), nil
	case src >= gx.TexGenSrcTex0 && src <= gx.TexGenSrcTex7:
		return fn("vec4", g.attr(gx.AttrTex0+gx.Attr(src-gx.TexGenSrcTex0)), one, one), nil
	case src >= gx.TexGenSrcTexCoord0 && src <= gx.TexGenSrcTexCoord6:
		// only coordinates generated before this one exist
		k := int(src - gx.TexGenSrcTexCoord0)
		if k >= n {
			return nil, errors.Wrapf(ErrInvalidMaterialReference, "texgen %d reads texcoord %d", n, k)
		}
		return fn("vec4", ident("t_TexCoord"+strconv.Itoa(k)), one), nil
	case src == gx.TexGenSrcColor0 || src == gx.TexGenSrcColor1:
		k := int(src - gx.TexGenSrcColor0)
		if k >= len(g.m.LightChannels) {
			return nil, errors.Wrapf(ErrInvalidMaterialReference, "texgen %d reads light channel %d", n, k)
		}
		return ident("t_ChanColor" + strconv.Itoa(k)), nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "texgen %d source %d", n, src)
}

// texGenMatrix returns the matrix of a texgen or nil for identity.
func texGenMatrix(mtx gx.TexGenMatrix) (expr, error) {
	switch {
	case mtx == gx.TexGenIdentity:
		return nil, nil
	case mtx < gx.TexGenPnMtx0 || mtx%3 != 0:
	case mtx < gx.TexGenTexMtx0:
		return ident("u_PosMtx[" + strconv.Itoa(int(mtx-gx.TexGenPnMtx0)/3) + "]"), nil
	case mtx < gx.TexGenIdentity:
		return ident("u_TexMtx[" + strconv.Itoa(int(mtx-gx.TexGenTexMtx0)/3) + "]"), nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "texgen matrix %d", mtx)
}

func postTexGenMatrix(mtx gx.PostTexGenMatrix) (expr, error) {
	switch {
	case mtx == gx.PostTexMtxIdentity:
		return nil, nil
	case mtx < gx.PostTexMtx0 || (mtx-gx.PostTexMtx0)%3 != 0:
	case int(mtx-gx.PostTexMtx0)/3 < gx.PostTexMtxCount:
		return ident("u_PostTexMtx[" + strconv.Itoa(int(mtx-gx.PostTexMtx0)/3) + "]"), nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "post texgen matrix %d", mtx)
}

// texGen builds the coordinate of texgen n. The order is source, matrix,
// normalize, post matrix.
func (g *vertexGen) texGen(tg gx.TexGen, n int) (expr, error) {
	src, err := g.texGenSource(tg.Source, n)
	if err != nil {
		return nil, err
	}
	mtx, err := texGenMatrix(tg.Matrix)
	if err != nil {
		return nil, err
	}
	var v expr
	switch {
	case tg.Type == gx.TexGenMtx3x4:
		v = field{src, "xyz"}
		if mtx != nil {
			v = fn("Mul", mtx, src)
		}
	case tg.Type == gx.TexGenMtx2x4:
		v = fn("vec3", field{src, "xy"}, float(1))
		if mtx != nil {
			v = fn("vec3", field{fn("Mul", mtx, src), "xy"}, float(1))
		}
	case tg.Type == gx.TexGenSRTG:
		v = fn("vec3", field{src, "rg"}, float(1))
	case tg.Type >= gx.TexGenBump0 && tg.Type <= gx.TexGenBump7:
		// no per light offset without dynamic lighting
		v = field{src, "xyz"}
	default:
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "texgen %d type %d", n, tg.Type)
	}
	if tg.Normalize {
		v = fn("normalize", v)
	}
	post, err := postTexGenMatrix(tg.PostMatrix)
	if err != nil {
		return nil, err
	}
	if post != nil {
		v = fn("Mul", post, fn("vec4", v, float(1)))
	}
	return v, nil
}

func generateVertex(m *gx.Material) (string, error) {
	g := &vertexGen{m: m}
	g.used[gx.AttrPnMtxIdx] = true
	g.line("Mat4x3 t_PosMtx = u_PosMtx[int(%s / 3.0)];", glsl(g.attr(gx.AttrPnMtxIdx)))
	g.line("vec3 t_Position = Mul(t_PosMtx, vec4(%s, 1.0));", glsl(g.attr(gx.AttrPos)))
	g.line("gl_Position = u_Projection * vec4(t_Position, 1.0);")

	for i, lc := range m.LightChannels {
		c, err := g.channel(lc.Color, i, "rgb")
		if err != nil {
			return "", err
		}
		a, err := g.channel(lc.Alpha, i, "a")
		if err != nil {
			return "", err
		}
		g.line("vec4 t_ChanColor%d = vec4(%s, %s);", i, glsl(c), glsl(a))
		g.line("v_Color%d = t_ChanColor%d;", i, i)
	}
	for i, tg := range m.TexGens {
		v, err := g.texGen(tg, i)
		if err != nil {
			return "", err
		}
		g.line("vec3 t_TexCoord%d = %s;", i, glsl(v))
		g.line("v_TexCoord%d = t_TexCoord%d;", i, i)
	}

	var b strings.Builder
	b.WriteString(glslVersion)
	b.WriteString(commonPrelude)
	b.WriteByte('\n')
	for a, d := range attrDecl {
		if g.used[a] {
			fmt.Fprintf(&b, "layout(location = %d) in %s %s;\n", a, d.typ, d.name)
		}
	}
	if g.binormal {
		fmt.Fprintf(&b, "layout(location = %d) in vec3 a_Binormal;\n", LocBinormal)
	}
	if g.tangent {
		fmt.Fprintf(&b, "layout(location = %d) in vec3 a_Tangent;\n", LocTangent)
	}
	b.WriteByte('\n')
	writeVaryings(&b, "out", m)
	b.WriteString("\nvoid main() {\n")
	b.WriteString(g.body.String())
	b.WriteString("}\n")
	return b.String(), nil
}

// writeVaryings declares the light channel colors and texture coordinates
// passed from the vertex to the fragment stage.
func writeVaryings(b *strings.Builder, qual string, m *gx.Material) {
	for i := range m.LightChannels {
		fmt.Fprintf(b, "%s vec4 v_Color%d;\n", qual, i)
	}
	for i := range m.TexGens {
		fmt.Fprintf(b, "%s vec3 v_TexCoord%d;\n", qual, i)
	}
}
