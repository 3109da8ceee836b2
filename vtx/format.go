// SPDX-License-Identifier: GPL-2.0-or-later

// Package vtx turns GX display lists into packed vertex and index buffers.
package vtx

import (
	"gxview/gx"

	"github.com/pkg/errors"
)

// AttrFormat is one entry of the vertex attribute format table.
type AttrFormat struct {
	CompCnt  gx.CompCnt
	CompType gx.CompType
}

// FormatTable holds the format of every attribute slot. It is usually fixed
// per title.
type FormatTable [gx.AttrMax]AttrFormat

// DescTable holds the addressing mode of every attribute slot. It changes per
// mesh.
type DescTable [gx.AttrMax]gx.AttrType

// Arrays holds the indexed attribute data, one array per slot.
type Arrays [gx.AttrMax]AttrArray

type AttrArray struct {
	Data []byte
	// Stride between elements. Zero means tightly packed.
	Stride int
}

// attrShape describes how a slot is stored in the source and in the packed
// vertex.
type attrShape struct {
	compCount int
	elemSize  int // bytes per destination element, 4 for a packed color
	srcSize   int // bytes of one source element
	dstSize   int
	compType  gx.CompType
	color     bool
}

func colorSrcSize(t gx.CompType) (int, bool) {
	switch t {
	case gx.TypeRGB565, gx.TypeRGBA4:
		return 2, true
	case gx.TypeRGB8, gx.TypeRGBA6:
		return 3, true
	case gx.TypeRGBX8, gx.TypeRGBA8:
		return 4, true
	}
	return 0, false
}

func numericSize(t gx.CompType) (int, bool) {
	switch t {
	case gx.TypeU8, gx.TypeS8:
		return 1, true
	case gx.TypeU16, gx.TypeS16:
		return 2, true
	case gx.TypeF32:
		return 4, true
	}
	return 0, false
}

func shapeOf(a gx.Attr, f AttrFormat) (attrShape, error) {
	switch {
	case a.IsMtxIdx():
		return attrShape{compCount: 1, elemSize: 1, srcSize: 1, dstSize: 1, compType: gx.TypeU8}, nil
	case a.IsColor():
		n, ok := colorSrcSize(f.CompType)
		if !ok {
			return attrShape{}, errors.Wrapf(ErrInvalidFormat, "%v: color type %d", a, f.CompType)
		}
		if f.CompCnt != gx.CntClrRGB && f.CompCnt != gx.CntClrRGBA {
			return attrShape{}, errors.Wrapf(ErrInvalidFormat, "%v: component count %d", a, f.CompCnt)
		}
		return attrShape{compCount: 1, elemSize: 4, srcSize: n, dstSize: 4, compType: f.CompType, color: true}, nil
	}

	size, ok := numericSize(f.CompType)
	if !ok {
		return attrShape{}, errors.Wrapf(ErrInvalidFormat, "%v: component type %d", a, f.CompType)
	}
	var count int
	switch {
	case a == gx.AttrPos:
		switch f.CompCnt {
		case gx.CntPosXY:
			count = 2
		case gx.CntPosXYZ:
			count = 3
		}
	case a == gx.AttrNrm:
		if f.CompType == gx.TypeU8 || f.CompType == gx.TypeU16 {
			return attrShape{}, errors.Wrapf(ErrInvalidFormat, "%v: unsigned normal", a)
		}
		switch f.CompCnt {
		case gx.CntNrmXYZ:
			count = 3
		case gx.CntNrmNBT:
			count = 9
		}
	case a.IsTexCoord():
		switch f.CompCnt {
		case gx.CntTexS:
			count = 1
		case gx.CntTexST:
			count = 2
		}
	}
	if count == 0 {
		return attrShape{}, errors.Wrapf(ErrInvalidFormat, "%v: component count %d", a, f.CompCnt)
	}
	return attrShape{
		compCount: count,
		elemSize:  size,
		srcSize:   count * size,
		dstSize:   count * size,
		compType:  f.CompType,
	}, nil
}
