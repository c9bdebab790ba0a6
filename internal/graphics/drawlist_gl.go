package graphics

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DrawBuffers owns the vertex array and the shared vertex/index buffers a
// DrawList is submitted through.
type DrawBuffers struct {
	vao uint32
	vbo uint32
	ibo uint32
}

// NewDrawBuffers creates the GL objects and configures the vertex layout.
func NewDrawBuffers() *DrawBuffers {
	b := &DrawBuffers{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ibo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)

	var v DrawVertex
	stride := int32(unsafe.Sizeof(v))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.UNSIGNED_BYTE, true, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Color))))

	gl.BindVertexArray(0)
	return b
}

// Buffers exposes the GL object names.
func (b *DrawBuffers) Buffers() (vao, vbo, ibo uint32) {
	return b.vao, b.vbo, b.ibo
}

// Submit issues one indexed draw per batch. viewportW and viewportH restore the
// scissor for batches without a clip rectangle. The caller has already bound the
// program and set its uniforms.
func (b *DrawBuffers) Submit(dl *DrawList, viewportW, viewportH int) int {
	if dl.Len() == 0 {
		return 0
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)
	gl.ActiveTexture(gl.TEXTURE0)

	var v DrawVertex
	var idx DrawIndex
	vsize := int(unsafe.Sizeof(v))
	isize := int(unsafe.Sizeof(idx))

	calls := 0
	for _, cmd := range dl.Batches() {
		if cmd.Command.ElementCount == 0 {
			continue
		}
		gl.BufferData(gl.ARRAY_BUFFER, len(cmd.Vertices)*vsize, gl.Ptr(cmd.Vertices), gl.STREAM_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cmd.Indices)*isize, gl.Ptr(cmd.Indices), gl.STREAM_DRAW)

		clip := cmd.Command.ClipRect
		if clip.Empty() {
			gl.Scissor(0, 0, int32(viewportW), int32(viewportH))
		} else {
			// GL scissor origin is bottom-left
			gl.Scissor(int32(clip.X), int32(viewportH-clip.Y2()), int32(clip.W), int32(clip.H))
		}

		gl.BindTexture(gl.TEXTURE_2D, cmd.Command.TextureID)
		gl.DrawElements(gl.TRIANGLES, cmd.Command.ElementCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		calls++
	}
	gl.BindVertexArray(0)
	return calls
}

// Dispose deletes the GL objects.
func (b *DrawBuffers) Dispose() {
	gl.DeleteBuffers(1, &b.ibo)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	*b = DrawBuffers{}
}
