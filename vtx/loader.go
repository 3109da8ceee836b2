// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"encoding/binary"

	"gxview/gx"

	"github.com/pkg/errors"
)

// LoadedVertexData is the result of unpacking one command stream.
type LoadedVertexData struct {
	// Vertices uses Layout.Stride per vertex in native byte order.
	Vertices      []byte
	Indices       []uint16
	VertexCount   int
	TriangleCount int
}

type convertFunc func(dst, src []byte)

// fetchFunc writes one attribute of one vertex. src is the part of the
// command stream that belongs to this attribute.
type fetchFunc func(dst, src []byte, arrays *Arrays) error

type attrFetcher struct {
	srcSize int
	fetch   fetchFunc
}

// Loader unpacks command streams for one format and descriptor combination.
// The per attribute fetch strategy is chosen once when the loader is built.
// A Loader has no mutable state and may be shared between goroutines.
type Loader struct {
	Layout   *Layout
	fetchers []attrFetcher
}

func NewLoader(fmts *FormatTable, desc *DescTable) (*Loader, error) {
	layout, err := PlanLayout(fmts, desc)
	if err != nil {
		return nil, err
	}
	l := &Loader{
		Layout: layout,
	}
	for _, al := range layout.Attrs {
		l.fetchers = append(l.fetchers, attrFetcher{
			srcSize: al.SrcSize,
			fetch:   newFetch(al),
		})
	}
	return l, nil
}

func newFetch(al AttrLayout) fetchFunc {
	conv := newConvert(al)
	off, size := al.Offset, al.Size
	switch al.Mode {
	case gx.AttrIndex8:
		return func(dst, src []byte, arrays *Arrays) error {
			e, err := arrayElement(arrays, al, int(src[0]))
			if err != nil {
				return err
			}
			conv(dst[off:off+size], e)
			return nil
		}
	case gx.AttrIndex16:
		return func(dst, src []byte, arrays *Arrays) error {
			e, err := arrayElement(arrays, al, int(binary.BigEndian.Uint16(src)))
			if err != nil {
				return err
			}
			conv(dst[off:off+size], e)
			return nil
		}
	default:
		return func(dst, src []byte, _ *Arrays) error {
			conv(dst[off:off+size], src)
			return nil
		}
	}
}

func arrayElement(arrays *Arrays, al AttrLayout, idx int) ([]byte, error) {
	if arrays == nil {
		return nil, errors.Wrapf(ErrMalformedCommandStream, "%v: no array for indexed attribute", al.Attr)
	}
	arr := &arrays[al.Attr]
	stride := arr.Stride
	if stride == 0 {
		stride = al.ArrayStride
	}
	if stride < 0 || idx < 0 {
		return nil, errors.Wrapf(ErrMalformedCommandStream, "%v: index %d with array stride %d", al.Attr, idx, stride)
	}
	start := idx * stride
	end := start + al.ArrayStride
	if end > len(arr.Data) {
		return nil, errors.Wrapf(ErrMalformedCommandStream, "%v: index %d past end of array (%d bytes)", al.Attr, idx, len(arr.Data))
	}
	return arr.Data[start:end], nil
}

// Unpack decodes a whole command stream. The stream is a sequence of draw
// records {op u8, count u16, vertex data} that ends with a zero primitive or
// at the end of cmd.
func (l *Loader) Unpack(cmd []byte, arrays *Arrays) (*LoadedVertexData, error) {
	out := &LoadedVertexData{}
	stride := l.Layout.Stride
	srcStride := l.Layout.SrcStride
	pos := 0
	for pos < len(cmd) {
		op := cmd[pos]
		prim := gx.Primitive(op & gx.PrimMask)
		if prim == 0 {
			break
		}
		if !supportedPrimitive(prim) {
			return nil, errors.Wrapf(ErrUnsupportedTopology, "%v at offset %d", prim, pos)
		}
		if pos+3 > len(cmd) {
			return nil, errors.Wrapf(ErrMalformedCommandStream, "truncated draw header at offset %d", pos)
		}
		n := int(binary.BigEndian.Uint16(cmd[pos+1:]))
		if !wholePrimitives(prim, n) {
			return nil, errors.Wrapf(ErrMalformedCommandStream, "%v with %d vertices at offset %d", prim, n, pos)
		}
		pos += 3
		if pos+n*srcStride > len(cmd) {
			return nil, errors.Wrapf(ErrMalformedCommandStream,
				"%v with %d vertices needs %d bytes at offset %d, %d left",
				prim, n, n*srcStride, pos, len(cmd)-pos)
		}
		base := out.VertexCount
		if base+n > 0x10000 {
			return nil, errors.Wrapf(ErrTooManyVertices, "%d vertices", base+n)
		}
		out.Vertices = append(out.Vertices, make([]byte, n*stride)...)
		for i := 0; i < n; i++ {
			dst := out.Vertices[(base+i)*stride : (base+i+1)*stride]
			for _, f := range l.fetchers {
				if err := f.fetch(dst, cmd[pos:pos+f.srcSize], arrays); err != nil {
					return nil, errors.WithMessagef(err, "vertex %d", base+i)
				}
				pos += f.srcSize
			}
		}
		var tris int
		out.Indices, tris = appendTriangles(out.Indices, prim, base, n)
		out.VertexCount += n
		out.TriangleCount += tris
	}
	return out, nil
}

// Unpack plans a layout and unpacks cmd without caching the loader.
func Unpack(fmts *FormatTable, desc *DescTable, cmd []byte, arrays *Arrays) (*LoadedVertexData, error) {
	l, err := NewLoader(fmts, desc)
	if err != nil {
		return nil, err
	}
	return l.Unpack(cmd, arrays)
}
