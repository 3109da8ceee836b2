// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"math"
	"strings"
	"testing"

	"gxview/gx"

	"github.com/pkg/errors"
)

func TestGLSLFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-128, "-128.0"},
		{0.875, "0.875"},
		{255, "255.0"},
	}
	for _, tc := range tests {
		if got := glslFloat(tc.in); got != tc.want {
			t.Errorf("glslFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestColorIn(t *testing.T) {
	tests := []struct {
		cc        gx.CC
		abc, d    string
		wantError bool
	}{
		{cc: gx.CCCPrev, abc: "TevOverflow(t_ColorPrev.rgb)", d: "TevSignedOverflow(t_ColorPrev.rgb)"},
		{cc: gx.CCA1, abc: "TevOverflow(t_Color1.aaa)", d: "TevSignedOverflow(t_Color1.aaa)"},
		{cc: gx.CCC2, abc: "TevOverflow(t_Color2.rgb)", d: "TevSignedOverflow(t_Color2.rgb)"},
		{cc: gx.CCTexA, abc: "t_TexColor.aaa", d: "t_TexColor.aaa"},
		{cc: gx.CCRasC, abc: "t_RasColor.rgb", d: "t_RasColor.rgb"},
		{cc: gx.CCHalf, abc: "vec3(0.5)", d: "vec3(0.5)"},
		{cc: gx.CCKonst, abc: "u_KonstColor[1].rgb", d: "u_KonstColor[1].rgb"},
		{cc: 16, wantError: true},
		{cc: -1, wantError: true},
	}
	for _, tc := range tests {
		o, err := colorIn(tc.cc, gx.KCSelK1)
		if tc.wantError {
			if !errors.Is(err, ErrInvalidMaterialReference) {
				t.Errorf("colorIn(%d): got %v, want ErrInvalidMaterialReference", tc.cc, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("colorIn(%d): %v", tc.cc, err)
			continue
		}
		if got := glsl(o.wrapped(false)); got != tc.abc {
			t.Errorf("colorIn(%d) as A = %q, want %q", tc.cc, got, tc.abc)
		}
		if got := glsl(o.wrapped(true)); got != tc.d {
			t.Errorf("colorIn(%d) as D = %q, want %q", tc.cc, got, tc.d)
		}
	}
}

// tevOverflow and tevSignedOverflow evaluate the fragment prelude wraps.
func tevOverflow(a float64) float64 {
	v := a * (255.0 / 256.0)
	return (v - math.Floor(v)) * (256.0 / 255.0)
}

func tevSignedOverflow(a float64) float64 {
	v := (a*255.0 + 1024.0) / 2048.0
	return ((v-math.Floor(v))*2048.0 - 1024.0) / 255.0
}

// D keeps values the 8 bit A, B and C inputs would wrap.
func TestRegisterWrapRanges(t *testing.T) {
	for _, f := range []string{"vec3 TevOverflow(vec3 a)", "vec3 TevSignedOverflow(vec3 a)"} {
		if !strings.Contains(fragmentPrelude, f) {
			t.Errorf("fragment prelude does not define %q", f)
		}
	}
	tests := []struct {
		in, abc, d float64
	}{
		{0, 0, 0},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5 + 1.0/255, -0.5},
		{2, 1 - 1.0/255, 2},
		{5, 5 - 4*256.0/255, 5 - 2048.0/255},
	}
	for _, tc := range tests {
		if got := tevOverflow(tc.in); math.Abs(got-tc.abc) > 1e-6 {
			t.Errorf("TevOverflow(%v) = %v, want %v", tc.in, got, tc.abc)
		}
		if got := tevSignedOverflow(tc.in); math.Abs(got-tc.d) > 1e-6 {
			t.Errorf("TevSignedOverflow(%v) = %v, want %v", tc.in, got, tc.d)
		}
	}
}

func TestAlphaIn(t *testing.T) {
	tests := []struct {
		ca   gx.CA
		want string
	}{
		{gx.CAAPrev, "TevOverflow(t_ColorPrev.a)"},
		{gx.CAA2, "TevOverflow(t_Color2.a)"},
		{gx.CATexA, "t_TexColor.a"},
		{gx.CARasA, "t_RasColor.a"},
		{gx.CAZero, "0.0"},
		{gx.CAKonst, "u_KonstColor[3].g"},
	}
	for _, tc := range tests {
		o, err := alphaIn(tc.ca, gx.KASelK3G)
		if err != nil {
			t.Errorf("alphaIn(%d): %v", tc.ca, err)
			continue
		}
		if got := glsl(o.wrapped(false)); got != tc.want {
			t.Errorf("alphaIn(%d) = %q, want %q", tc.ca, got, tc.want)
		}
	}
	if _, err := alphaIn(8, gx.KASel1); !errors.Is(err, ErrInvalidMaterialReference) {
		t.Errorf("alphaIn(8): got %v, want ErrInvalidMaterialReference", err)
	}
}

func TestKonst(t *testing.T) {
	colors := []struct {
		sel  gx.KonstColorSel
		want string
	}{
		{gx.KCSel1, "vec3(1.0)"},
		{gx.KCSel3_4, "vec3(0.75)"},
		{gx.KCSel1_8, "vec3(0.125)"},
		{gx.KCSelK2, "u_KonstColor[2].rgb"},
		{gx.KCSelK0R, "u_KonstColor[0].rrr"},
		{gx.KCSelK1G, "u_KonstColor[1].ggg"},
		{gx.KCSelK3A, "u_KonstColor[3].aaa"},
	}
	for _, tc := range colors {
		e, err := konstColor(tc.sel)
		if err != nil {
			t.Errorf("konstColor(%#x): %v", int(tc.sel), err)
			continue
		}
		if got := glsl(e); got != tc.want {
			t.Errorf("konstColor(%#x) = %q, want %q", int(tc.sel), got, tc.want)
		}
	}
	alphas := []struct {
		sel  gx.KonstAlphaSel
		want string
	}{
		{gx.KASel1_2, "0.5"},
		{gx.KASel7_8, "0.875"},
		{gx.KASelK2B, "u_KonstColor[2].b"},
		{gx.KASelK0A, "u_KonstColor[0].a"},
	}
	for _, tc := range alphas {
		e, err := konstAlpha(tc.sel)
		if err != nil {
			t.Errorf("konstAlpha(%#x): %v", int(tc.sel), err)
			continue
		}
		if got := glsl(e); got != tc.want {
			t.Errorf("konstAlpha(%#x) = %q, want %q", int(tc.sel), got, tc.want)
		}
	}
	for _, sel := range []gx.KonstColorSel{0x08, 0x0B, 0x20} {
		if _, err := konstColor(sel); !errors.Is(err, ErrInvalidMaterialReference) {
			t.Errorf("konstColor(%#x): got %v, want ErrInvalidMaterialReference", int(sel), err)
		}
	}
	for _, sel := range []gx.KonstAlphaSel{0x08, 0x0C, 0x20} {
		if _, err := konstAlpha(sel); !errors.Is(err, ErrInvalidMaterialReference) {
			t.Errorf("konstAlpha(%#x): got %v, want ErrInvalidMaterialReference", int(sel), err)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name  string
		op    gx.TevOp
		bias  gx.TevBias
		scale gx.TevScale
		clamp bool
		alpha bool
		want  string
	}{
		{"add", gx.TevAdd, gx.TevBiasZero, gx.TevScale1, false, false,
			"(t_TevD.rgb + mix(t_TevA.rgb, t_TevB.rgb, t_TevC.rgb))"},
		{"sub bias scale clamp", gx.TevSub, gx.TevBiasAddHalf, gx.TevScale2, true, true,
			"clamp((((t_TevD.a - mix(t_TevA.a, t_TevB.a, t_TevC.a)) + 0.5) * 2.0), 0.0, 1.0)"},
		{"add sub half divide", gx.TevAdd, gx.TevBiasSubHalf, gx.TevDivide2, false, false,
			"(((t_TevD.rgb + mix(t_TevA.rgb, t_TevB.rgb, t_TevC.rgb)) - 0.5) * 0.5)"},
		{"r8 gt", gx.TevCompR8GT, gx.TevBiasZero, gx.TevScale1, false, false,
			"(t_TevD.rgb + ((TevQuant(t_TevA.r) > TevQuant(t_TevB.r)) ? t_TevC.rgb : vec3(0.0)))"},
		{"gr16 eq alpha", gx.TevCompGR16EQ, gx.TevBiasZero, gx.TevScale1, false, true,
			"(t_TevD.a + ((TevPack16(t_TevA.rg) == TevPack16(t_TevB.rg)) ? t_TevC.a : 0.0))"},
		{"bgr24 gt", gx.TevCompBGR24GT, gx.TevBiasZero, gx.TevScale1, false, false,
			"(t_TevD.rgb + ((TevPack24(t_TevA.rgb) > TevPack24(t_TevB.rgb)) ? t_TevC.rgb : vec3(0.0)))"},
		{"rgb8 gt", gx.TevCompRGB8GT, gx.TevBiasZero, gx.TevScale1, false, false,
			"(t_TevD.rgb + (TevPerCompGT(t_TevA.rgb, t_TevB.rgb) * t_TevC.rgb))"},
		{"a8 eq clamp", gx.TevCompA8EQ, gx.TevBiasZero, gx.TevScale1, true, true,
			"clamp((t_TevD.a + ((TevQuant(t_TevA.a) == TevQuant(t_TevB.a)) ? t_TevC.a : 0.0)), 0.0, 1.0)"},
	}
	for _, tc := range tests {
		e, err := combine(tc.op, tc.bias, tc.scale, tc.clamp, tc.alpha)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got := glsl(e); got != tc.want {
			t.Errorf("%s:\n got %s\nwant %s", tc.name, got, tc.want)
		}
	}
	if _, err := combine(2, 0, 0, false, false); !errors.Is(err, ErrInvalidMaterialReference) {
		t.Errorf("op 2: got %v, want ErrInvalidMaterialReference", err)
	}
	if _, err := combine(gx.TevAdd, 3, 0, false, false); !errors.Is(err, ErrInvalidMaterialReference) {
		t.Errorf("bias 3: got %v, want ErrInvalidMaterialReference", err)
	}
}

func TestRasChannel(t *testing.T) {
	tests := []struct {
		ch       gx.RasChannelID
		channels int
		want     string
		err      error
	}{
		{gx.Color0A0, 1, "v_Color0", nil},
		{gx.Alpha1, 2, "v_Color1", nil},
		{gx.ColorZero, 0, "vec4(0.0)", nil},
		{gx.Color1A1, 1, "", ErrInvalidMaterialReference},
		{gx.ColorNull, 2, "", ErrInvalidMaterialReference},
		{gx.AlphaBump, 2, "", ErrUnsupportedIndirectMode},
	}
	for _, tc := range tests {
		e, err := rasChannel(tc.ch, tc.channels)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("rasChannel(%d, %d): got %v, want %v", tc.ch, tc.channels, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("rasChannel(%d, %d): %v", tc.ch, tc.channels, err)
			continue
		}
		if got := glsl(e); got != tc.want {
			t.Errorf("rasChannel(%d, %d) = %q, want %q", tc.ch, tc.channels, got, tc.want)
		}
	}
}

func TestSwizzle(t *testing.T) {
	s, err := swizzle(gx.SwapTable{gx.ChanA, gx.ChanB, gx.ChanG, gx.ChanR})
	if err != nil || s != "abgr" {
		t.Errorf("swizzle = %q, %v, want abgr", s, err)
	}
	if _, err := swizzle(gx.SwapTable{gx.ChanR, 4, gx.ChanB, gx.ChanA}); !errors.Is(err, ErrInvalidMaterialReference) {
		t.Errorf("bad channel: got %v", err)
	}
}

func TestAlphaTestFolding(t *testing.T) {
	tests := []struct {
		test       gx.AlphaTest
		pass, fold bool
	}{
		{gx.AlphaTest{Op: gx.AlphaOpAnd, CompareA: gx.CompareAlways, CompareB: gx.CompareAlways}, true, true},
		{gx.AlphaTest{Op: gx.AlphaOpAnd, CompareA: gx.CompareNever, CompareB: gx.CompareAlways}, false, true},
		{gx.AlphaTest{Op: gx.AlphaOpOr, CompareA: gx.CompareNever, CompareB: gx.CompareAlways}, true, true},
		{gx.AlphaTest{Op: gx.AlphaOpXor, CompareA: gx.CompareAlways, CompareB: gx.CompareAlways}, false, true},
		{gx.AlphaTest{Op: gx.AlphaOpXnor, CompareA: gx.CompareNever, CompareB: gx.CompareNever}, true, true},
		{gx.AlphaTest{Op: gx.AlphaOpAnd, CompareA: gx.CompareGreater, CompareB: gx.CompareAlways}, false, false},
	}
	for i, tc := range tests {
		pass, fold := foldAlphaTest(tc.test)
		if pass != tc.pass || fold != tc.fold {
			t.Errorf("%d: got pass %v fold %v, want %v %v", i, pass, fold, tc.pass, tc.fold)
		}
	}
}
