package renderer

import (
	"spritebox/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	DrawList *graphics.DrawList
	Width    int
	Height   int
	// DT is the wall-clock frame time in seconds, Alpha the fixed-step remainder.
	DT    float64
	Alpha float64
	Proj  mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features.
// Render enqueues sprites into ctx.DrawList; the renderer submits them afterwards.
type Renderable interface {
	Init() error
	Render(ctx RenderContext) error
	Dispose()
	SetViewport(width, height int)
}

// Backend turns a filled DrawList into draw calls.
type Backend interface {
	Begin(width, height int, proj mgl32.Mat4) error
	Flush(dl *graphics.DrawList, width, height int) int
	Dispose()
}
