package widget

import (
	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/ui"
)

// Slider maps a [0,1] track position onto [Min, Max].
type Slider struct {
	BaseComponent
	Value    float32
	Min, Max float32
	Steps    int
	ID       string
	OnChange func(val float32)

	TrackColor uint32
	ThumbColor uint32
}

func NewSlider(x, y, w, h, min, max, initial float32, steps int, id string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         initial,
		Min:           min,
		Max:           max,
		Steps:         steps,
		ID:            id,
		OnChange:      onChange,
		TrackColor:    graphics.PackColor(0.3, 0.3, 0.3, 0.8),
		ThumbColor:    graphics.PackColor(0.24, 0.52, 0.88, 1),
	}
}

func (s *Slider) Render(u *ui.UI, p ui.Pointer) {
	span := s.Max - s.Min
	ratio := float32(0)
	if span != 0 {
		ratio = graphics.Clamp((s.Value-s.Min)/span, 0, 1)
	}
	next := u.DrawSlider(s.X, s.Y, s.W, s.H, ratio, p, s.Steps, s.ID, s.TrackColor, s.ThumbColor)
	if next == ratio {
		return
	}
	s.Value = s.Min + next*span
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
}

// HandleInput is a no-op; dragging is handled while rendering.
func (s *Slider) HandleInput(justPressedLeft bool) bool {
	return false
}
