// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"
	"unsafe"

	"gxview/gx"
	"gxview/shader"
	"gxview/vtx"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

const (
	ArrayBuffer        = gl.ARRAY_BUFFER
	ElementArrayBuffer = gl.ELEMENT_ARRAY_BUFFER
	UniformBuffer      = gl.UNIFORM_BUFFER
)

type Buffer struct {
	buf    uint32
	target uint32
}

func NewBuffer(target uint32) *Buffer {
	b := &Buffer{
		target: target,
	}
	gl.GenBuffers(1, &b.buf)
	runtime.AddCleanup(b, deleteBuffer, b.buf)
	return b
}

func deleteBuffer(buf uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteBuffers(1, &buf)
	})
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.buf)
}

// SetData sets the data for this buffer. It needs to be bound first.
func (b *Buffer) SetData(size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(b.target, size, data, usage)
}

// BindBase binds a uniform buffer to a block binding point.
func (b *Buffer) BindBase(binding uint32) {
	gl.BindBufferBase(b.target, binding, b.buf)
}

// SetFloats uploads a packed uniform block.
func (b *Buffer) SetFloats(data []float32) {
	b.Bind()
	gl.BufferData(b.target, 4*len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
}

type VertexArray struct {
	a uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.a)
	runtime.AddCleanup(va, deleteVertexArray, va.a)
	return va
}

func deleteVertexArray(va uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &va)
	})
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.a)
}

// AttribPointer is one glVertexAttribPointer call.
type AttribPointer struct {
	Location   uint32
	Size       int32
	Type       uint32
	Normalized bool
	Offset     int
}

func compType(t gx.CompType) (uint32, int, error) {
	switch t {
	case gx.TypeU8:
		return gl.UNSIGNED_BYTE, 1, nil
	case gx.TypeS8:
		return gl.BYTE, 1, nil
	case gx.TypeU16:
		return gl.UNSIGNED_SHORT, 2, nil
	case gx.TypeS16:
		return gl.SHORT, 2, nil
	case gx.TypeF32:
		return gl.FLOAT, 4, nil
	}
	return 0, 0, errors.Errorf("component type %d", t)
}

// AttribPointers describes the packed vertex of l to GL. Colors are four
// normalized bytes, integer normals are normalized, everything else keeps
// its integer value. NBT normals feed the binormal and tangent locations too.
func AttribPointers(l *vtx.Layout) ([]AttribPointer, error) {
	var ps []AttribPointer
	for _, al := range l.Attrs {
		if al.Color {
			ps = append(ps, AttribPointer{
				Location:   uint32(al.Attr),
				Size:       4,
				Type:       gl.UNSIGNED_BYTE,
				Normalized: true,
				Offset:     al.Offset,
			})
			continue
		}
		typ, size, err := compType(al.CompType)
		if err != nil {
			return nil, errors.Wrapf(err, "%v", al.Attr)
		}
		p := AttribPointer{
			Location:   uint32(al.Attr),
			Size:       int32(al.CompCount),
			Type:       typ,
			Normalized: al.Attr == gx.AttrNrm && typ != gl.FLOAT,
			Offset:     al.Offset,
		}
		if al.Attr != gx.AttrNrm || al.CompCount != 9 {
			ps = append(ps, p)
			continue
		}
		p.Size = 3
		for i, loc := range []int{int(gx.AttrNrm), shader.LocBinormal, shader.LocTangent} {
			q := p
			q.Location = uint32(loc)
			q.Offset = al.Offset + i*3*size
			ps = append(ps, q)
		}
	}
	return ps, nil
}

// Mesh is a coalesced vertex and index buffer pair ready to draw.
type Mesh struct {
	vao    *VertexArray
	vbo    *Buffer
	ebo    *Buffer
	stride int32
	ptrs   []AttribPointer
	Chunks []vtx.Chunk
}

// NewMesh uploads c. Every chunk shares the layout l.
func NewMesh(l *vtx.Layout, c *vtx.Coalesced) (*Mesh, error) {
	ptrs, err := AttribPointers(l)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		vao:    NewVertexArray(),
		vbo:    NewBuffer(ArrayBuffer),
		ebo:    NewBuffer(ElementArrayBuffer),
		stride: int32(l.Stride),
		ptrs:   ptrs,
		Chunks: c.Chunks,
	}
	m.vao.Bind()
	m.vbo.Bind()
	if len(c.Vertices) > 0 {
		m.vbo.SetData(len(c.Vertices), gl.Ptr(c.Vertices), gl.STATIC_DRAW)
	}
	m.ebo.Bind()
	if len(c.Indices) > 0 {
		m.ebo.SetData(2*len(c.Indices), gl.Ptr(c.Indices), gl.STATIC_DRAW)
	}
	for _, p := range ptrs {
		gl.EnableVertexAttribArray(p.Location)
	}
	gl.BindVertexArray(0)
	return m, nil
}

// Draw draws chunk i. The attribute pointers are rebased on the chunk since
// indices are chunk relative.
func (m *Mesh) Draw(i int) {
	ch := m.Chunks[i]
	if ch.IndexCount == 0 {
		return
	}
	m.vao.Bind()
	m.vbo.Bind()
	for _, p := range m.ptrs {
		gl.VertexAttribPointerWithOffset(p.Location, p.Size, p.Type, p.Normalized, m.stride, uintptr(ch.VertexOffset+p.Offset))
	}
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(ch.IndexCount), gl.UNSIGNED_SHORT, uintptr(ch.IndexOffset))
	gl.BindVertexArray(0)
}
