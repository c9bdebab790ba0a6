package menu

import (
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/logging"
	"spritebox/internal/theme"
	"spritebox/internal/ui/widget"
)

// ThemePanel edits the overlay style: dark mode, opacity, save and reset.
type ThemePanel struct {
	layer
	o       *Overlay
	save    *widget.Button
	reset   *widget.Button
	dark    *widget.Toggle
	opacity *widget.Slider
}

func newThemePanel(o *Overlay) *ThemePanel {
	p := &ThemePanel{o: o}
	p.save = widget.NewButton("Save theme", 0, 0, 0, 0, func() {
		if err := o.Style.Save(o.ThemePath); err != nil {
			logging.Error("save theme: %v", err)
		}
	})
	p.reset = widget.NewButton("Reset", 0, 0, 0, 0, o.ResetTheme)
	p.dark = widget.NewToggle("Dark", 0, 0, 0, 0, o.Style.Dark, func(on bool) {
		alpha := o.Style.Alpha
		*o.Style = *theme.Default(on, o.baseAlpha)
		o.Style.Alpha = alpha
	})
	p.opacity = widget.NewSlider(0, 0, 0, 0, 0.2, 1.0, o.Style.Alpha, 0, "theme.opacity", func(v float32) {
		o.Style.Alpha = v
	})
	return p
}

func (p *ThemePanel) Render(ctx renderer.RenderContext) error {
	o := p.o
	if !o.Panels.Theme {
		return nil
	}
	o.begin(ctx)
	u := o.UI
	s := o.Style

	line := u.LineHeight(1)
	rowH := line + 2*s.FramePadding[1]
	rows := (int(theme.ColorCount) + 1) / 2
	w := float32(380)
	h := line + 4 + 2*s.WindowPadding[1] + 3*(rowH+s.ItemSpacing[1]) + float32(rows)*(line+2)
	cx, cy := o.panel("Theme Editor", 10, 30, w, h)
	inner := w - 2*s.WindowPadding[0]

	p.save.SetPosition(cx, cy)
	p.save.SetSize(inner/2-s.ItemSpacing[0]/2, rowH)
	p.reset.SetPosition(cx+inner/2+s.ItemSpacing[0]/2, cy)
	p.reset.SetSize(inner/2-s.ItemSpacing[0]/2, rowH)
	styleButton(p.save, s)
	styleButton(p.reset, s)
	p.save.Render(u, o.Pointer)
	p.reset.Render(u, o.Pointer)
	cy += rowH + s.ItemSpacing[1]

	p.dark.SetPosition(cx, cy)
	p.dark.SetSize(inner, line)
	p.dark.IsOn = s.Dark
	p.dark.BoxColor = s.Packed(theme.ColFrameBg)
	p.dark.CheckColor = s.Packed(theme.ColCheckMark)
	p.dark.TextColor = s.Packed(theme.ColText)
	p.dark.Render(u, o.Pointer)
	cy += rowH + s.ItemSpacing[1]

	u.DrawText("Global Opacity", cx, cy, 1, s.Packed(theme.ColText))
	labelW, _ := u.MeasureText("Global Opacity ", 1)
	p.opacity.SetPosition(cx+labelW, cy)
	p.opacity.SetSize(inner-labelW, line)
	p.opacity.Value = s.Alpha
	p.opacity.TrackColor = s.Packed(theme.ColFrameBg)
	p.opacity.ThumbColor = s.Packed(theme.ColSliderGrab)
	p.opacity.Render(u, o.Pointer)
	cy += rowH + s.ItemSpacing[1]

	colW := inner / 2
	for i := theme.ColorID(0); i < theme.ColorCount; i++ {
		col := float32(int(i) % 2)
		row := float32(int(i) / 2)
		sx := cx + col*colW
		sy := cy + row*(line+2)
		u.DrawFilledRect(sx, sy+1, line-2, line-2, s.Color(i).Packed(1))
		u.DrawText(i.String(), sx+line+2, sy, 0.8, s.Packed(theme.ColText))
	}
	return nil
}

func (p *ThemePanel) handleInput(justPressedLeft bool) {
	p.save.HandleInput(justPressedLeft)
	p.reset.HandleInput(justPressedLeft)
	p.dark.HandleInput(justPressedLeft)
}
