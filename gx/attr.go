// SPDX-License-Identifier: GPL-2.0-or-later

// Package gx holds the hardware enumerants shared by the vertex loader and the
// shader generator.
package gx

import "fmt"

// Attr is a vertex attribute slot. The order is the shader attribute location
// and the field order inside a packed vertex.
type Attr int

const (
	AttrPnMtxIdx Attr = iota
	AttrTex0MtxIdx
	AttrTex1MtxIdx
	AttrTex2MtxIdx
	AttrTex3MtxIdx
	AttrTex4MtxIdx
	AttrTex5MtxIdx
	AttrTex6MtxIdx
	AttrTex7MtxIdx
	AttrPos
	AttrNrm
	AttrClr0
	AttrClr1
	AttrTex0
	AttrTex1
	AttrTex2
	AttrTex3
	AttrTex4
	AttrTex5
	AttrTex6
	AttrTex7
	AttrMax
)

func (a Attr) IsMtxIdx() bool {
	return a >= AttrPnMtxIdx && a <= AttrTex7MtxIdx
}

func (a Attr) IsColor() bool {
	return a == AttrClr0 || a == AttrClr1
}

func (a Attr) IsTexCoord() bool {
	return a >= AttrTex0 && a <= AttrTex7
}

func (a Attr) String() string {
	switch {
	case a == AttrPnMtxIdx:
		return "PNMTXIDX"
	case a.IsMtxIdx():
		return fmt.Sprintf("TEX%dMTXIDX", a-AttrTex0MtxIdx)
	case a == AttrPos:
		return "POS"
	case a == AttrNrm:
		return "NRM"
	case a.IsColor():
		return fmt.Sprintf("CLR%d", a-AttrClr0)
	case a.IsTexCoord():
		return fmt.Sprintf("TEX%d", a-AttrTex0)
	}
	return fmt.Sprintf("Attr(%d)", int(a))
}

// CompCnt is the component count selector. Its meaning depends on the slot.
type CompCnt int

const (
	CntPosXY  CompCnt = 0
	CntPosXYZ CompCnt = 1

	CntNrmXYZ CompCnt = 0
	CntNrmNBT CompCnt = 1

	CntClrRGB  CompCnt = 0
	CntClrRGBA CompCnt = 1

	CntTexS  CompCnt = 0
	CntTexST CompCnt = 1
)

// CompType is the element type. Numeric values overlap between the numeric
// and the color encodings, the slot decides which set applies.
type CompType int

const (
	TypeU8  CompType = 0
	TypeS8  CompType = 1
	TypeU16 CompType = 2
	TypeS16 CompType = 3
	TypeF32 CompType = 4

	TypeRGB565 CompType = 0
	TypeRGB8   CompType = 1
	TypeRGBX8  CompType = 2
	TypeRGBA4  CompType = 3
	TypeRGBA6  CompType = 4
	TypeRGBA8  CompType = 5
)

// AttrType is the addressing mode of one attribute.
type AttrType int

const (
	AttrNone AttrType = iota
	AttrDirect
	AttrIndex8
	AttrIndex16
)

func (t AttrType) String() string {
	switch t {
	case AttrNone:
		return "none"
	case AttrDirect:
		return "direct"
	case AttrIndex8:
		return "index8"
	case AttrIndex16:
		return "index16"
	}
	return fmt.Sprintf("AttrType(%d)", int(t))
}

// Primitive is the upper five bits of a draw command opcode.
type Primitive uint8

const (
	PrimQuads         Primitive = 0x80
	PrimQuadStrip     Primitive = 0x88
	PrimTriangles     Primitive = 0x90
	PrimTriangleStrip Primitive = 0x98
	PrimTriangleFan   Primitive = 0xA0
	PrimLines         Primitive = 0xA8
	PrimLineStrip     Primitive = 0xB0
	PrimPoints        Primitive = 0xB8

	PrimMask   = 0xF8
	VatIdxMask = 0x07
)

func (p Primitive) String() string {
	switch p {
	case PrimQuads:
		return "quads"
	case PrimQuadStrip:
		return "quadstrip"
	case PrimTriangles:
		return "triangles"
	case PrimTriangleStrip:
		return "trianglestrip"
	case PrimTriangleFan:
		return "trianglefan"
	case PrimLines:
		return "lines"
	case PrimLineStrip:
		return "linestrip"
	case PrimPoints:
		return "points"
	}
	return fmt.Sprintf("Primitive(0x%02x)", uint8(p))
}
