package widget

import (
	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/ui"
)

// Toggle is a check box with a label drawn to its right.
type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool

	BoxColor   uint32
	CheckColor uint32
	TextColor  uint32
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
		BoxColor:      graphics.PackColor(0.75, 0.75, 0.75, 0.94),
		CheckColor:    graphics.PackColor(0.26, 0.59, 0.98, 1),
		TextColor:     graphics.ColorWhite,
	}
}

func (t *Toggle) Render(u *ui.UI, p ui.Pointer) {
	t.IsHovered = t.hovered(p)

	box := t.H
	u.DrawFilledRect(t.X, t.Y, box, box, t.BoxColor)
	if t.IsOn {
		inset := box * 0.25
		u.DrawFilledRect(t.X+inset, t.Y+inset, box-2*inset, box-2*inset, t.CheckColor)
	}
	if t.IsHovered {
		u.DrawOutline(t.X, t.Y, box, box, t.CheckColor)
	}
	_, th := u.MeasureText(t.Label, 1)
	u.DrawText(t.Label, t.X+box+6, t.Y+(t.H-th)/2, 1, t.TextColor)
}

func (t *Toggle) HandleInput(justPressedLeft bool) bool {
	if t.IsHovered && justPressedLeft {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
