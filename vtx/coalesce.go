// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

// Chunk locates one LoadedVertexData inside coalesced buffers. Offsets are in
// bytes. Indices are not rebased, draw a chunk with its vertex offset.
type Chunk struct {
	VertexOffset  int
	VertexCount   int
	IndexOffset   int
	IndexCount    int
	TriangleCount int
}

type Coalesced struct {
	Vertices []byte
	Indices  []uint16
	Chunks   []Chunk
}

const coalesceAlign = 4

// Coalesce merges many unpacked streams into one vertex and one index buffer.
// Every chunk starts on a 4 byte boundary.
func Coalesce(datas []*LoadedVertexData) *Coalesced {
	vsize, isize := 0, 0
	for _, d := range datas {
		vsize = align(vsize, coalesceAlign) + len(d.Vertices)
		isize = align(isize, coalesceAlign/2) + len(d.Indices)
	}
	c := &Coalesced{
		Vertices: make([]byte, 0, vsize),
		Indices:  make([]uint16, 0, isize),
		Chunks:   make([]Chunk, 0, len(datas)),
	}
	for _, d := range datas {
		for len(c.Vertices)%coalesceAlign != 0 {
			c.Vertices = append(c.Vertices, 0)
		}
		for len(c.Indices)%(coalesceAlign/2) != 0 {
			c.Indices = append(c.Indices, 0)
		}
		c.Chunks = append(c.Chunks, Chunk{
			VertexOffset:  len(c.Vertices),
			VertexCount:   d.VertexCount,
			IndexOffset:   len(c.Indices) * 2,
			IndexCount:    len(d.Indices),
			TriangleCount: d.TriangleCount,
		})
		c.Vertices = append(c.Vertices, d.Vertices...)
		c.Indices = append(c.Indices, d.Indices...)
	}
	return c
}
