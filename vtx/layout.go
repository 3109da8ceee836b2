// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"gxview/gx"

	"github.com/pkg/errors"
)

// AttrLayout places one present attribute inside the packed vertex.
type AttrLayout struct {
	Attr   gx.Attr
	Mode   gx.AttrType
	Offset int // destination offset in bytes
	Size   int // destination size in bytes
	// SrcSize is the number of bytes consumed from the command stream, the
	// full element for direct data, the index width otherwise.
	SrcSize     int
	ArrayStride int // element size inside an indexed array
	CompCount   int
	CompType    gx.CompType
	Color       bool
}

// Layout is the packed vertex description for one format and descriptor
// combination.
type Layout struct {
	Attrs     []AttrLayout
	Stride    int
	SrcStride int
}

func align(n, a int) int {
	return (n + a - 1) / a * a
}

// PlanLayout computes the packed vertex layout. Equal inputs yield equal
// layouts.
func PlanLayout(fmts *FormatTable, desc *DescTable) (*Layout, error) {
	l := &Layout{}
	for a := gx.Attr(0); a < gx.AttrMax; a++ {
		mode := desc[a]
		if mode == gx.AttrNone {
			continue
		}
		shape, err := shapeOf(a, fmts[a])
		if err != nil {
			return nil, err
		}
		al := AttrLayout{
			Attr:      a,
			Mode:      mode,
			Size:      shape.dstSize,
			CompCount: shape.compCount,
			CompType:  shape.compType,
			Color:     shape.color,
		}
		switch mode {
		case gx.AttrDirect:
			al.SrcSize = shape.srcSize
		case gx.AttrIndex8:
			al.SrcSize = 1
			al.ArrayStride = shape.srcSize
		case gx.AttrIndex16:
			al.SrcSize = 2
			al.ArrayStride = shape.srcSize
		default:
			return nil, errors.Wrapf(ErrInvalidFormat, "%v: addressing mode %v", a, mode)
		}
		if a.IsMtxIdx() && mode != gx.AttrDirect {
			return nil, errors.Wrapf(ErrInvalidFormat, "%v: matrix index must be direct", a)
		}
		l.Stride = align(l.Stride, shape.elemSize)
		al.Offset = l.Stride
		l.Stride += al.Size
		l.SrcStride += al.SrcSize
		l.Attrs = append(l.Attrs, al)
	}
	l.Stride = align(l.Stride, 4)
	return l, nil
}

// Attr returns the layout of a, ok is false if a is not present.
func (l *Layout) Attr(a gx.Attr) (AttrLayout, bool) {
	for _, al := range l.Attrs {
		if al.Attr == a {
			return al, true
		}
	}
	return AttrLayout{}, false
}
