package menu

import (
	"fmt"

	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/theme"
)

var editorBackground = graphics.PackColor(0.13, 0.13, 0.13, 1)

// TextPanel shows the script buffer with a status line and line numbers.
type TextPanel struct {
	layer
	o *Overlay
}

// VisibleLines is how many lines fit in the panel at the current size.
func (p *TextPanel) VisibleLines() int {
	line := p.o.UI.LineHeight(1)
	if line <= 0 {
		return 0
	}
	_, h := p.bounds()
	return max(int((h-3*line-20)/line), 1)
}

func (p *TextPanel) bounds() (float32, float32) {
	return float32(p.o.width) - 400 - 320, float32(p.o.height) - 60
}

func (p *TextPanel) Render(ctx renderer.RenderContext) error {
	o := p.o
	if !o.Panels.Editor || o.Script == nil {
		return nil
	}
	o.begin(ctx)
	u := o.UI
	s := o.Style

	w, h := p.bounds()
	w = max(w, 300)
	cx, cy := o.panel("Text Editor", 400, 30, w, h)
	line := u.LineHeight(1)
	u.DrawText(o.Script.StatusLine(), cx, cy, 1, s.Packed(theme.ColText))
	cy += line + s.ItemSpacing[1]

	inner := w - 2*s.WindowPadding[0]
	bodyH := h - (cy - 30) - s.WindowPadding[1]
	u.DrawFilledRect(cx, cy, inner, bodyH, editorBackground)

	lines, first := o.Script.Visible(p.VisibleLines())
	cur := o.Script.Cursor()
	gutter, _ := u.MeasureText("0000 ", 1)
	for i, text := range lines {
		y := cy + float32(i)*line
		n := first + i
		if n == cur.Line {
			u.DrawFilledRect(cx, y, inner, line, s.Packed(theme.ColTextSelectedBg))
		}
		u.DrawText(fmt.Sprintf("%4d", n+1), cx, y, 1, s.Packed(theme.ColTextDisabled))
		u.DrawText(text, cx+gutter, y, 1, graphics.ColorWhite)
	}
	return nil
}
