package geometry

import (
	"github.com/matjam/slidepager/internal/gles"
)

// VertexCount is the number of vertices in a rectangle: two triangles.
const VertexCount = 6

// Rectangle returns the 6 vertices (x, y pairs) of the two triangles that
// cover [x, x+w] x [y, y+h].
func Rectangle(x, y, w, h float32) [VertexCount * 2]float32 {
	x1, y1 := x, y
	x2, y2 := x+w, y+h
	return [VertexCount * 2]float32{
		x1, y1,
		x2, y1,
		x1, y2,
		x1, y2,
		x2, y1,
		x2, y2,
	}
}

// Buffer owns one array buffer per vertex attribute slot. The vertex data is
// copied into a buffer-owned array before every upload, so nothing handed to
// GL aliases caller memory.
type Buffer struct {
	gl       gles.Context
	buffers  map[uint32]uint32
	vertices [VertexCount * 2]float32
}

func NewBuffer(gl gles.Context) *Buffer {
	return &Buffer{
		gl:      gl,
		buffers: make(map[uint32]uint32),
	}
}

// SetRectangle writes a rectangle into the buffer for slot and points the
// attribute at it: 2 floats per vertex, not normalized, tightly packed.
// It leaves ARRAY_BUFFER bound to the slot's buffer.
func (b *Buffer) SetRectangle(x, y, w, h float32, slot uint32) {
	buf, ok := b.buffers[slot]
	if !ok {
		buf = b.gl.CreateBuffer()
		b.buffers[slot] = buf
	}

	b.vertices = Rectangle(x, y, w, h)

	b.gl.BindBuffer(gles.ArrayBuffer, buf)
	b.gl.BufferData(gles.ArrayBuffer, b.vertices[:], gles.StaticDraw)
	b.gl.EnableVertexAttribArray(slot)
	b.gl.VertexAttribPointer(slot, 2, gles.Float, false, 0, 0)
}

// Release deletes every buffer created so far.
func (b *Buffer) Release() {
	for slot, buf := range b.buffers {
		b.gl.DeleteBuffer(buf)
		delete(b.buffers, slot)
	}
}
