package widget

import (
	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/ui"
)

type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool

	NormalColor uint32
	HoverColor  uint32
	TextColor   uint32
	TextScale   float32
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   graphics.PackColor(0.3, 0.3, 0.3, 1),
		HoverColor:    graphics.PackColor(0.4, 0.4, 0.4, 1),
		TextColor:     graphics.ColorWhite,
		TextScale:     1,
	}
}

func (b *Button) Render(u *ui.UI, p ui.Pointer) {
	b.IsHovered = b.hovered(p)

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color)

	// shrink to fit, then centre
	scale := b.TextScale
	textW, textH := u.MeasureText(b.Text, scale)
	if maxW := b.W * 0.9; textW > maxW && textW > 0 {
		scale *= maxW / textW
		textW, textH = u.MeasureText(b.Text, scale)
	}
	u.DrawText(b.Text, b.X+(b.W-textW)/2, b.Y+(b.H-textH)/2, scale, b.TextColor)
}

func (b *Button) HandleInput(justPressedLeft bool) bool {
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
