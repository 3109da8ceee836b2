// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"strconv"

	"gxview/gx"

	"github.com/pkg/errors"
)

// Mappings from GX enumerants to expression fragments. None of these look at
// the whole material, the generator checks that what they reference exists.

var regNames = [gx.RegCount]string{"t_ColorPrev", "t_Color0", "t_Color1", "t_Color2"}

func regName(r gx.Register) (string, error) {
	if r < 0 || r >= gx.RegCount {
		return "", errors.Wrapf(ErrInvalidMaterialReference, "register %d", r)
	}
	return regNames[r], nil
}

// operand is one combiner input. reg is set when the value was read back from
// a TEV register and may lie outside [0, 1].
type operand struct {
	e   expr
	reg bool
}

// wrapped applies the register overflow emulation. The D input is added after
// the blend and keeps the signed 10 bit register range, A, B and C are 8 bit.
func (o operand) wrapped(d bool) expr {
	switch {
	case !o.reg:
		return o.e
	case d:
		return fn("TevSignedOverflow", o.e)
	default:
		return fn("TevOverflow", o.e)
	}
}

func colorIn(cc gx.CC, ksel gx.KonstColorSel) (operand, error) {
	switch cc {
	case gx.CCCPrev, gx.CCC0, gx.CCC1, gx.CCC2:
		return operand{ident(regNames[cc/2] + ".rgb"), true}, nil
	case gx.CCAPrev, gx.CCA0, gx.CCA1, gx.CCA2:
		return operand{ident(regNames[cc/2] + ".aaa"), true}, nil
	case gx.CCTexC:
		return operand{e: ident("t_TexColor.rgb")}, nil
	case gx.CCTexA:
		return operand{e: ident("t_TexColor.aaa")}, nil
	case gx.CCRasC:
		return operand{e: ident("t_RasColor.rgb")}, nil
	case gx.CCRasA:
		return operand{e: ident("t_RasColor.aaa")}, nil
	case gx.CCOne:
		return operand{e: vec3(1)}, nil
	case gx.CCHalf:
		return operand{e: vec3(0.5)}, nil
	case gx.CCZero:
		return operand{e: vec3(0)}, nil
	case gx.CCKonst:
		k, err := konstColor(ksel)
		return operand{e: k}, err
	}
	return operand{}, errors.Wrapf(ErrInvalidMaterialReference, "color input %d", cc)
}

func alphaIn(ca gx.CA, ksel gx.KonstAlphaSel) (operand, error) {
	switch ca {
	case gx.CAAPrev, gx.CAA0, gx.CAA1, gx.CAA2:
		return operand{ident(regNames[ca] + ".a"), true}, nil
	case gx.CATexA:
		return operand{e: ident("t_TexColor.a")}, nil
	case gx.CARasA:
		return operand{e: ident("t_RasColor.a")}, nil
	case gx.CAZero:
		return operand{e: float(0)}, nil
	case gx.CAKonst:
		k, err := konstAlpha(ksel)
		return operand{e: k}, err
	}
	return operand{}, errors.Wrapf(ErrInvalidMaterialReference, "alpha input %d", ca)
}

func usesTexture(cc [4]gx.CC, ca [4]gx.CA) bool {
	for _, c := range cc {
		if c == gx.CCTexC || c == gx.CCTexA {
			return true
		}
	}
	for _, a := range ca {
		if a == gx.CATexA {
			return true
		}
	}
	return false
}

func usesRaster(cc [4]gx.CC, ca [4]gx.CA) bool {
	for _, c := range cc {
		if c == gx.CCRasC || c == gx.CCRasA {
			return true
		}
	}
	for _, a := range ca {
		if a == gx.CARasA {
			return true
		}
	}
	return false
}

var konstComps = [4]string{"r", "g", "b", "a"}

func konstFraction(sel int) float64 {
	return float64(8-sel) / 8
}

func konstColor(sel gx.KonstColorSel) (expr, error) {
	switch {
	case sel >= gx.KCSel1 && sel <= gx.KCSel1_8:
		return vec3(konstFraction(int(sel))), nil
	case sel >= gx.KCSelK0 && sel <= gx.KCSelK3:
		return ident(konstRef(int(sel-gx.KCSelK0)) + ".rgb"), nil
	case sel >= gx.KCSelK0R && sel <= gx.KCSelK3A:
		i := int(sel - gx.KCSelK0R)
		c := konstComps[i/4]
		return ident(konstRef(i%4) + "." + c + c + c), nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "konst color select %#x", int(sel))
}

func konstAlpha(sel gx.KonstAlphaSel) (expr, error) {
	switch {
	case sel >= gx.KASel1 && sel <= gx.KASel1_8:
		return float(konstFraction(int(sel))), nil
	case sel >= gx.KASelK0R && sel <= gx.KASelK3A:
		i := int(sel - gx.KASelK0R)
		return ident(konstRef(i%4) + "." + konstComps[i/4]), nil
	}
	return nil, errors.Wrapf(ErrInvalidMaterialReference, "konst alpha select %#x", int(sel))
}

func konstRef(i int) string {
	return "u_KonstColor[" + strconv.Itoa(i) + "]"
}

// rasChannel returns the interpolated light channel a stage reads. channels
// is the number of light channels the material declares.
func rasChannel(ch gx.RasChannelID, channels int) (expr, error) {
	n := -1
	switch ch {
	case gx.Color0, gx.Alpha0, gx.Color0A0:
		n = 0
	case gx.Color1, gx.Alpha1, gx.Color1A1:
		n = 1
	case gx.ColorZero:
		return fn("vec4", float(0)), nil
	case gx.AlphaBump, gx.AlphaBumpN:
		return nil, errors.Wrapf(ErrUnsupportedIndirectMode, "raster channel %d", ch)
	}
	if n < 0 || n >= channels {
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "raster channel %d with %d light channels", ch, channels)
	}
	return ident("v_Color" + strconv.Itoa(n)), nil
}

func swizzle(t gx.SwapTable) (string, error) {
	var s [4]byte
	for i, c := range t {
		if c < gx.ChanR || c > gx.ChanA {
			return "", errors.Wrapf(ErrInvalidMaterialReference, "swap table channel %d", c)
		}
		s[i] = "rgba"[c]
	}
	return string(s[:]), nil
}

func biasValue(b gx.TevBias) (float64, error) {
	switch b {
	case gx.TevBiasZero:
		return 0, nil
	case gx.TevBiasAddHalf:
		return 0.5, nil
	case gx.TevBiasSubHalf:
		return -0.5, nil
	}
	return 0, errors.Wrapf(ErrInvalidMaterialReference, "bias %d", b)
}

func scaleValue(s gx.TevScale) (float64, error) {
	switch s {
	case gx.TevScale1:
		return 1, nil
	case gx.TevScale2:
		return 2, nil
	case gx.TevScale4:
		return 4, nil
	case gx.TevDivide2:
		return 0.5, nil
	}
	return 0, errors.Wrapf(ErrInvalidMaterialReference, "scale %d", s)
}

// combine returns the arithmetic of one combiner. It reads its inputs from
// t_TevA to t_TevD. Comparisons ignore bias and scale, the hardware reuses
// those bits to select the compare mode.
func combine(o gx.TevOp, bias gx.TevBias, scale gx.TevScale, clampOut, alpha bool) (expr, error) {
	comp, zero := "rgb", vec3(0)
	if alpha {
		comp, zero = "a", float(0)
	}
	in := func(n string) expr { return ident("t_Tev" + n + "." + comp) }

	var v expr
	switch o {
	case gx.TevAdd, gx.TevSub:
		b, err := biasValue(bias)
		if err != nil {
			return nil, err
		}
		s, err := scaleValue(scale)
		if err != nil {
			return nil, err
		}
		sign := "+"
		if o == gx.TevSub {
			sign = "-"
		}
		v = op(sign, in("D"), fn("mix", in("A"), in("B"), in("C")))
		switch {
		case b > 0:
			v = op("+", v, float(b))
		case b < 0:
			v = op("-", v, float(-b))
		}
		if s != 1 {
			v = op("*", v, float(s))
		}
	case gx.TevCompR8GT, gx.TevCompR8EQ:
		v = compareSelect(o, "TevQuant", "r", in("C"), zero)
	case gx.TevCompGR16GT, gx.TevCompGR16EQ:
		v = compareSelect(o, "TevPack16", "rg", in("C"), zero)
	case gx.TevCompBGR24GT, gx.TevCompBGR24EQ:
		v = compareSelect(o, "TevPack24", "rgb", in("C"), zero)
	case gx.TevCompRGB8GT, gx.TevCompRGB8EQ:
		if alpha {
			v = compareSelect(o, "TevQuant", "a", in("C"), zero)
			break
		}
		f := "TevPerCompGT"
		if o == gx.TevCompRGB8EQ {
			f = "TevPerCompEQ"
		}
		v = op("*", fn(f, ident("t_TevA.rgb"), ident("t_TevB.rgb")), in("C"))
	default:
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "tev op %d", o)
	}
	if o != gx.TevAdd && o != gx.TevSub {
		v = op("+", in("D"), v)
	}
	if clampOut {
		v = fn("clamp", v, float(0), float(1))
	}
	return v, nil
}

// compareSelect compares A and B after packing them with pack and selects c
// or zero. Odd ops test for equality.
func compareSelect(o gx.TevOp, pack, comp string, c, zero expr) expr {
	rel := ">"
	if o&1 != 0 {
		rel = "=="
	}
	cond := op(rel, fn(pack, ident("t_TevA."+comp)), fn(pack, ident("t_TevB."+comp)))
	return ternary{cond: cond, t: c, f: zero}
}

// alphaCompare tests the quantized output alpha t_AlphaQ against ref.
func alphaCompare(c gx.CompareType, ref uint8) (expr, error) {
	rel := ""
	switch c {
	case gx.CompareNever:
		return ident("false"), nil
	case gx.CompareAlways:
		return ident("true"), nil
	case gx.CompareLess:
		rel = "<"
	case gx.CompareEqual:
		rel = "=="
	case gx.CompareLEqual:
		rel = "<="
	case gx.CompareGreater:
		rel = ">"
	case gx.CompareNEqual:
		rel = "!="
	case gx.CompareGEqual:
		rel = ">="
	default:
		return nil, errors.Wrapf(ErrInvalidMaterialReference, "alpha compare %d", c)
	}
	return op(rel, ident("t_AlphaQ"), float(float64(ref))), nil
}

func alphaOp(o gx.AlphaOp) (string, error) {
	switch o {
	case gx.AlphaOpAnd:
		return "&&", nil
	case gx.AlphaOpOr:
		return "||", nil
	case gx.AlphaOpXor:
		return "!=", nil
	case gx.AlphaOpXnor:
		return "==", nil
	}
	return "", errors.Wrapf(ErrInvalidMaterialReference, "alpha op %d", o)
}

// foldAlphaTest evaluates the alpha test when neither compare depends on
// the fragment. ok is false otherwise.
func foldAlphaTest(t gx.AlphaTest) (pass, ok bool) {
	a, aok := constCompare(t.CompareA)
	b, bok := constCompare(t.CompareB)
	if !aok || !bok {
		return false, false
	}
	switch t.Op {
	case gx.AlphaOpAnd:
		return a && b, true
	case gx.AlphaOpOr:
		return a || b, true
	case gx.AlphaOpXor:
		return a != b, true
	case gx.AlphaOpXnor:
		return a == b, true
	}
	return false, false
}

func constCompare(c gx.CompareType) (v, ok bool) {
	switch c {
	case gx.CompareNever:
		return false, true
	case gx.CompareAlways:
		return true, true
	}
	return false, false
}
