// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// VertexBufferCapacity is the fixed number of vertex slots a vertex
// buffer is created with. The core spec does not require growth
// (§7): exhausting it is a fatal, unrecoverable error.
const VertexBufferCapacity = 1024

// vertexBufferData is the resource-table entry for a vertex buffer:
// a backing buffer, the format its slots are packed in, and how many
// of its VertexBufferCapacity slots have been handed out.
type vertexBufferData struct {
	format  VertexFormat
	bufIdx  uint32
	cap     int
	alloc   int
}

// CreateVertexFormat packs semantics into a new VertexFormat and
// stores it in the device's format pool, returning a Handle to it.
func (d *Device) CreateVertexFormat(semantics ...Semantic) Handle {
	f := NewVertexFormat(semantics...)
	idx := d.vertexFormats.alloc(f)
	return d.handle(tagVertexFormat, idx)
}

// VertexFormat returns a copy of the format h refers to.
func (d *Device) VertexFormat(h Handle) VertexFormat {
	h.check(d, tagVertexFormat)
	return *d.vertexFormats.at(h.index)
}

// CreateVertexBuffer creates a vertex buffer with VertexBufferCapacity
// slots packed according to the format fmtHandle refers to.
func (d *Device) CreateVertexBuffer(fmtHandle Handle) Handle {
	format := d.VertexFormat(fmtHandle)
	bufIdx := d.allocBuffer(VertexBufferCapacity, 1, format.Size(), format.Align())
	idx := d.vertexBuffers.alloc(vertexBufferData{
		format: format,
		bufIdx: bufIdx,
		cap:    VertexBufferCapacity,
	})
	return d.handle(tagVertexBuffer, idx)
}

// VertexBufferFormat returns the format a vertex buffer was created
// with.
func (d *Device) VertexBufferFormat(h Handle) VertexFormat {
	h.check(d, tagVertexBuffer)
	return d.vertexBuffers.at(h.index).format
}

// AllocVertices reserves n contiguous vertex slots in h, returning the
// index of the first reserved slot. It panics if the buffer's
// capacity would be exceeded (§7: transient resource exhaustion is
// fatal, no growth).
func (d *Device) AllocVertices(h Handle, n int) int {
	h.check(d, tagVertexBuffer)
	vb := d.vertexBuffers.at(h.index)
	if vb.alloc+n > vb.cap {
		panic("driver: vertex buffer full")
	}
	start := vb.alloc
	vb.alloc += n
	return start
}

// VertexSlot returns the packed byte slice for the vertex at index in
// h, sized to the buffer's format.
func (d *Device) VertexSlot(h Handle, index int) []byte {
	h.check(d, tagVertexBuffer)
	vb := d.vertexBuffers.at(h.index)
	if index < 0 || index >= vb.alloc {
		panic("driver: vertex index out of range")
	}
	buf := *d.buffers.at(vb.bufIdx)
	return buf.At(0, index)
}
