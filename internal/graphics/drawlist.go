package graphics

import "github.com/go-gl/mathgl/mgl32"

// DrawVertex matches the attribute layout of the basic program: three vec2 and a
// packed RGBA8 colour.
type DrawVertex struct {
	Position mgl32.Vec2
	UV       mgl32.Vec2
	Normal   mgl32.Vec2
	Color    uint32
}

// DrawIndex is the element type uploaded to the index buffer.
type DrawIndex = uint32

// DrawCommand describes one batched draw call.
type DrawCommand struct {
	ClipRect     Rect
	TextureID    uint32
	ElementCount int32
}

// LocalCommand holds a command together with the geometry accumulated for it.
type LocalCommand struct {
	Command  DrawCommand
	Vertices []DrawVertex
	Indices  []DrawIndex
}

// TextureRef is what the draw list needs to know about a texture.
type TextureRef interface {
	ID() uint32
	Width() int
	Height() int
}

var quadIndices = [6]DrawIndex{0, 1, 2, 2, 3, 0}

// DrawList batches sprites by texture. Batches are kept in the order their
// texture was first used since the last Clear; sprites within a batch keep call order.
// A batch takes the clip rectangle current when it is created, so clipping a
// texture differently needs a Clear in between.
type DrawList struct {
	batches map[uint32]*LocalCommand
	order   []uint32
	clip    Rect
}

func NewDrawList() *DrawList {
	return &DrawList{batches: make(map[uint32]*LocalCommand)}
}

// SetClipRect sets the scissor rectangle, in window pixels, for batches created
// after this call. Sprites added to an existing batch keep that batch's clip.
// An empty rect disables clipping.
func (dl *DrawList) SetClipRect(r Rect) {
	dl.clip = r
}

// AddSprite appends a textured quad at loc covering width x height pixels and
// sampling the texel rectangle tr.
func (dl *DrawList) AddSprite(tex TextureRef, loc mgl32.Vec2, width, height float32, tr Rect, color uint32) {
	id := tex.ID()
	cmd, ok := dl.batches[id]
	if !ok {
		cmd = &LocalCommand{Command: DrawCommand{TextureID: id, ClipRect: dl.clip}}
		dl.batches[id] = cmd
		dl.order = append(dl.order, id)
	}

	var u1, v1, u2, v2 float32
	if tw, th := float32(tex.Width()), float32(tex.Height()); tw > 0 && th > 0 {
		u1 = float32(tr.X) / tw
		v1 = float32(tr.Y) / th
		u2 = float32(tr.X2()) / tw
		v2 = float32(tr.Y2()) / th
	}

	x1, y1 := loc.X(), loc.Y()
	x2, y2 := x1+width, y1+height
	base := DrawIndex(len(cmd.Vertices))
	cmd.Vertices = append(cmd.Vertices,
		DrawVertex{Position: mgl32.Vec2{x1, y1}, UV: mgl32.Vec2{u1, v1}, Color: color},
		DrawVertex{Position: mgl32.Vec2{x2, y1}, UV: mgl32.Vec2{u2, v1}, Color: color},
		DrawVertex{Position: mgl32.Vec2{x2, y2}, UV: mgl32.Vec2{u2, v2}, Color: color},
		DrawVertex{Position: mgl32.Vec2{x1, y2}, UV: mgl32.Vec2{u1, v2}, Color: color},
	)
	for _, i := range quadIndices {
		cmd.Indices = append(cmd.Indices, base+i)
	}
	cmd.Command.ElementCount += int32(len(quadIndices))
}

// Clear drops every batch and resets the clip rectangle.
func (dl *DrawList) Clear() {
	for id := range dl.batches {
		delete(dl.batches, id)
	}
	dl.order = dl.order[:0]
	dl.clip = Rect{}
}

// Batches returns the batches in first-use order.
func (dl *DrawList) Batches() []*LocalCommand {
	out := make([]*LocalCommand, 0, len(dl.order))
	for _, id := range dl.order {
		out = append(out, dl.batches[id])
	}
	return out
}

// Batch returns the batch for a texture handle, if any.
func (dl *DrawList) Batch(textureID uint32) (*LocalCommand, bool) {
	cmd, ok := dl.batches[textureID]
	return cmd, ok
}

// Len is the number of batches.
func (dl *DrawList) Len() int {
	return len(dl.order)
}
