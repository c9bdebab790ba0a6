package widget

import "spritebox/internal/graphics/renderables/ui"

// Component is an immediate-mode widget. Render refreshes hover state from the
// pointer; HandleInput acts on the hover state of the last Render.
type Component interface {
	Render(u *ui.UI, p ui.Pointer)
	HandleInput(justPressedLeft bool) bool
	SetPosition(x, y float32)
	SetSize(w, h float32)
	GetSize() (float32, float32)
}

type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32)    { b.X, b.Y = x, y }
func (b *BaseComponent) SetSize(w, h float32)        { b.W, b.H = w, h }
func (b *BaseComponent) GetSize() (float32, float32) { return b.W, b.H }

// Contains reports whether the point lies inside the component.
func (b *BaseComponent) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *BaseComponent) hovered(p ui.Pointer) bool {
	if p == nil {
		return false
	}
	return b.Contains(p.CursorPos())
}
