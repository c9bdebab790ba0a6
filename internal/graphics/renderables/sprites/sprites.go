package sprites

import (
	"github.com/pkg/errors"

	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/profiling"
)

// Drawable is anything that can enqueue itself into a draw list.
type Drawable interface {
	Draw(dl *graphics.DrawList) error
}

// Sprites implements the scene layer: every registered drawable, in insertion order.
type Sprites struct {
	items []Drawable
}

// NewSprites creates a new sprites renderable
func NewSprites(items ...Drawable) *Sprites {
	return &Sprites{items: items}
}

func (s *Sprites) Init() error {
	return nil
}

// Add appends d to the draw order.
func (s *Sprites) Add(d Drawable) {
	s.items = append(s.items, d)
}

// Remove drops d, keeping the order of the rest.
func (s *Sprites) Remove(d Drawable) {
	for i, it := range s.items {
		if it == d {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Sprites) Len() int {
	return len(s.items)
}

// Render enqueues every drawable. The first failure aborts the layer.
func (s *Sprites) Render(ctx renderer.RenderContext) error {
	defer profiling.Track("renderer.renderSprites")()

	for i, d := range s.items {
		if err := d.Draw(ctx.DrawList); err != nil {
			return errors.Wrapf(err, "sprite %d", i)
		}
	}
	return nil
}

func (s *Sprites) Dispose() {
	s.items = nil
}

func (s *Sprites) SetViewport(width, height int) {}
