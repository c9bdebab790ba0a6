package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"spritebox/internal/graphics"
	"spritebox/internal/profiling"
)

// Renderer orchestrates rendering via renderable layers. Each layer is flushed
// before the next one runs, so later layers paint over earlier ones.
type Renderer struct {
	renderables []Renderable
	backend     Backend
	drawList    *graphics.DrawList
	width       int
	height      int
	drawCalls   int
}

// NewRenderer initializes every renderable in order.
func NewRenderer(backend Backend, width, height int, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		renderables: rs,
		backend:     backend,
		drawList:    graphics.NewDrawList(),
	}
	for i, rend := range rs {
		if err := rend.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, errors.Wrapf(err, "init renderable %d", i)
		}
	}
	r.SetViewport(width, height)
	return r, nil
}

// Render draws one frame.
func (r *Renderer) Render(dt, alpha float64) error {
	defer profiling.Track("renderer.Render")()

	proj := mgl32.Ortho2D(0, float32(r.width), float32(r.height), 0)
	if err := r.backend.Begin(r.width, r.height, proj); err != nil {
		return err
	}

	ctx := RenderContext{
		DrawList: r.drawList,
		Width:    r.width,
		Height:   r.height,
		DT:       dt,
		Alpha:    alpha,
		Proj:     proj,
	}

	r.drawCalls = 0
	for _, renderable := range r.renderables {
		err := renderable.Render(ctx)
		if err != nil {
			r.drawList.Clear()
			return err
		}
		r.drawCalls += r.backend.Flush(r.drawList, r.width, r.height)
		r.drawList.Clear()
	}
	return nil
}

// DrawCalls reports how many batches the last frame submitted.
func (r *Renderer) DrawCalls() int {
	return r.drawCalls
}

// SetViewport resizes the projection and forwards the size to every renderable.
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order, then the backend.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.backend.Dispose()
}
