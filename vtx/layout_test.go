// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"reflect"
	"testing"

	"gxview/gx"

	"github.com/pkg/errors"
)

func posOnly(t gx.CompType) (*FormatTable, *DescTable) {
	fmts := &FormatTable{}
	fmts[gx.AttrPos] = AttrFormat{CompCnt: gx.CntPosXYZ, CompType: t}
	desc := &DescTable{}
	desc[gx.AttrPos] = gx.AttrDirect
	return fmts, desc
}

func TestPlanLayoutIsPure(t *testing.T) {
	fmts := &FormatTable{}
	fmts[gx.AttrPos] = AttrFormat{gx.CntPosXYZ, gx.TypeS16}
	fmts[gx.AttrNrm] = AttrFormat{gx.CntNrmXYZ, gx.TypeS8}
	fmts[gx.AttrClr0] = AttrFormat{gx.CntClrRGBA, gx.TypeRGBA8}
	fmts[gx.AttrTex0] = AttrFormat{gx.CntTexST, gx.TypeF32}
	desc := &DescTable{}
	desc[gx.AttrPnMtxIdx] = gx.AttrDirect
	desc[gx.AttrPos] = gx.AttrIndex16
	desc[gx.AttrNrm] = gx.AttrIndex8
	desc[gx.AttrClr0] = gx.AttrDirect
	desc[gx.AttrTex0] = gx.AttrIndex16

	a, err := PlanLayout(fmts, desc)
	if err != nil {
		t.Fatal(err)
	}
	fmts2 := *fmts
	desc2 := *desc
	b, err := PlanLayout(&fmts2, &desc2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("PlanLayout not deterministic: %+v != %+v", a, b)
	}
	if a.Stride%4 != 0 {
		t.Errorf("stride %d not a multiple of 4", a.Stride)
	}
	// pnmtxidx 1, pos 6 at 2, nrm 3 at 8, clr0 4 at 12, tex0 8 at 16
	want := []struct {
		attr   gx.Attr
		offset int
		src    int
	}{
		{gx.AttrPnMtxIdx, 0, 1},
		{gx.AttrPos, 2, 2},
		{gx.AttrNrm, 8, 1},
		{gx.AttrClr0, 12, 4},
		{gx.AttrTex0, 16, 2},
	}
	if len(a.Attrs) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(a.Attrs), len(want))
	}
	for i, w := range want {
		got := a.Attrs[i]
		if got.Attr != w.attr || got.Offset != w.offset || got.SrcSize != w.src {
			t.Errorf("attr %d = %v off %d src %d, want %v off %d src %d",
				i, got.Attr, got.Offset, got.SrcSize, w.attr, w.offset, w.src)
		}
	}
	if a.Stride != 24 {
		t.Errorf("stride = %d, want 24", a.Stride)
	}
	if a.SrcStride != 10 {
		t.Errorf("source stride = %d, want 10", a.SrcStride)
	}
}

func TestPlanLayoutStride(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[gx.Attr]AttrFormat
		stride int
		// alignment padding inside the vertex, the stride is then larger
		// than the rounded sum of the field sizes
		padded bool
	}{
		{"pos u8 xy", map[gx.Attr]AttrFormat{gx.AttrPos: {gx.CntPosXY, gx.TypeU8}}, 4, false},
		{"pos s8 xyz", map[gx.Attr]AttrFormat{gx.AttrPos: {gx.CntPosXYZ, gx.TypeS8}}, 4, false},
		{"pos s16 xyz", map[gx.Attr]AttrFormat{gx.AttrPos: {gx.CntPosXYZ, gx.TypeS16}}, 8, false},
		{"pos f32 xyz", map[gx.Attr]AttrFormat{gx.AttrPos: {gx.CntPosXYZ, gx.TypeF32}}, 12, false},
		{"pos+nrm f32", map[gx.Attr]AttrFormat{
			gx.AttrPos: {gx.CntPosXYZ, gx.TypeF32},
			gx.AttrNrm: {gx.CntNrmXYZ, gx.TypeF32},
		}, 24, false},
		{"pos+clr+tex s16", map[gx.Attr]AttrFormat{
			gx.AttrPos:  {gx.CntPosXYZ, gx.TypeS16},
			gx.AttrClr1: {gx.CntClrRGB, gx.TypeRGB565},
			gx.AttrTex3: {gx.CntTexST, gx.TypeS16},
		}, 16, false},
		{"nbt s16", map[gx.Attr]AttrFormat{
			gx.AttrPos: {gx.CntPosXYZ, gx.TypeF32},
			gx.AttrNrm: {gx.CntNrmNBT, gx.TypeS16},
		}, 32, false},
		{"tex s u8", map[gx.Attr]AttrFormat{
			gx.AttrTex0: {gx.CntTexS, gx.TypeU8},
			gx.AttrTex1: {gx.CntTexS, gx.TypeU8},
			gx.AttrTex2: {gx.CntTexS, gx.TypeU8},
			gx.AttrTex3: {gx.CntTexS, gx.TypeU8},
			gx.AttrTex4: {gx.CntTexS, gx.TypeU8},
		}, 8, false},
		{"mixed padded", map[gx.Attr]AttrFormat{
			gx.AttrPos:  {gx.CntPosXYZ, gx.TypeS8},
			gx.AttrNrm:  {gx.CntNrmXYZ, gx.TypeS8},
			gx.AttrClr0: {gx.CntClrRGBA, gx.TypeRGBA8},
			gx.AttrClr1: {gx.CntClrRGBA, gx.TypeRGBA8},
			gx.AttrTex0: {gx.CntTexS, gx.TypeS16},
			gx.AttrTex1: {gx.CntTexS, gx.TypeF32},
		}, 24, true},
	}
	for _, tc := range tests {
		fmts := &FormatTable{}
		desc := &DescTable{}
		sum := 0
		for a, f := range tc.attrs {
			fmts[a] = f
			desc[a] = gx.AttrDirect
			s, err := shapeOf(a, f)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			sum += s.dstSize
		}
		l, err := PlanLayout(fmts, desc)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if l.Stride != tc.stride {
			t.Errorf("%s: stride = %d, want %d", tc.name, l.Stride, tc.stride)
		}
		if rounded := align(sum, 4); tc.padded != (l.Stride != rounded) {
			t.Errorf("%s: stride = %d, sum of sizes rounded = %d, padded %v", tc.name, l.Stride, rounded, tc.padded)
		}
	}
}

func TestPlanLayoutAbsentSlotsAreFree(t *testing.T) {
	fmts, desc := posOnly(gx.TypeF32)
	fmts[gx.AttrNrm] = AttrFormat{gx.CntNrmXYZ, gx.TypeF32}
	fmts[gx.AttrTex0] = AttrFormat{gx.CntTexST, gx.TypeF32}
	l, err := PlanLayout(fmts, desc)
	if err != nil {
		t.Fatal(err)
	}
	if l.Stride != 12 || l.SrcStride != 12 || len(l.Attrs) != 1 {
		t.Errorf("got stride %d src %d attrs %d, want 12 12 1", l.Stride, l.SrcStride, len(l.Attrs))
	}
	if _, ok := l.Attr(gx.AttrNrm); ok {
		t.Errorf("absent normal reported as present")
	}
}

func TestPlanLayoutInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		attr gx.Attr
		f    AttrFormat
		mode gx.AttrType
	}{
		{"pos count", gx.AttrPos, AttrFormat{5, gx.TypeF32}, gx.AttrDirect},
		{"pos type", gx.AttrPos, AttrFormat{gx.CntPosXYZ, 7}, gx.AttrDirect},
		{"unsigned normal", gx.AttrNrm, AttrFormat{gx.CntNrmXYZ, gx.TypeU8}, gx.AttrDirect},
		{"color type", gx.AttrClr0, AttrFormat{gx.CntClrRGBA, 6}, gx.AttrDirect},
		{"indexed matrix", gx.AttrTex2MtxIdx, AttrFormat{}, gx.AttrIndex8},
		{"mode", gx.AttrTex0, AttrFormat{gx.CntTexST, gx.TypeS16}, 4},
	}
	for _, tc := range tests {
		fmts := &FormatTable{}
		desc := &DescTable{}
		fmts[tc.attr] = tc.f
		desc[tc.attr] = tc.mode
		if _, err := PlanLayout(fmts, desc); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%s: got %v, want ErrInvalidFormat", tc.name, err)
		}
	}
}
