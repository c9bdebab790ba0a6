package menu

import (
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/theme"
	"spritebox/internal/ui/widget"
)

type menuItem struct {
	button *widget.Button
	open   bool
	// entries are laid out under the item when open
	entries []*widget.Button
}

// MenuBar is the strip along the top with the File and Examples dropdowns.
type MenuBar struct {
	layer
	o     *Overlay
	items []*menuItem
}

func newMenuBar(o *Overlay) *MenuBar {
	m := &MenuBar{o: o}
	file := &menuItem{button: widget.NewButton("File", 0, 0, 0, 0, nil)}
	file.entries = []*widget.Button{
		widget.NewButton("Quit", 0, 0, 0, 0, func() { o.quit = true }),
	}
	examples := &menuItem{button: widget.NewButton("Examples", 0, 0, 0, 0, nil)}
	examples.entries = []*widget.Button{
		widget.NewButton("Show FPS (F3)", 0, 0, 0, 0, func() { o.Panels.FPS = !o.Panels.FPS }),
		widget.NewButton("Show Theme controls (F9)", 0, 0, 0, 0, func() { o.Panels.Theme = !o.Panels.Theme }),
		widget.NewButton("Show Text Editor (F2)", 0, 0, 0, 0, func() { o.Panels.Editor = !o.Panels.Editor }),
	}
	m.items = []*menuItem{file, examples}
	return m
}

// Height is the bar height in pixels.
func (m *MenuBar) Height() float32 {
	return m.o.UI.LineHeight(1) + 6
}

func (m *MenuBar) Render(ctx renderer.RenderContext) error {
	if !m.o.Panels.MenuBar {
		return nil
	}
	o := m.o
	o.begin(ctx)
	s := o.Style
	u := o.UI

	h := m.Height()
	u.DrawFilledRect(0, 0, float32(ctx.Width), h, s.Packed(theme.ColMenuBarBg))

	x := float32(0)
	for _, item := range m.items {
		w, _ := u.MeasureText(item.button.Text, 1)
		w += 2 * s.ItemSpacing[0]
		item.button.SetPosition(x, 0)
		item.button.SetSize(w, h)
		item.button.NormalColor = s.Packed(theme.ColMenuBarBg)
		item.button.HoverColor = s.Packed(theme.ColHeaderHovered)
		item.button.TextColor = s.Packed(theme.ColText)
		if item.open {
			item.button.NormalColor = s.Packed(theme.ColHeaderActive)
		}
		item.button.Render(u, o.Pointer)

		if item.open {
			m.renderDropdown(item, x, h)
		}
		x += w
	}
	return nil
}

func (m *MenuBar) renderDropdown(item *menuItem, x, y float32) {
	o := m.o
	u := o.UI
	s := o.Style
	width := float32(0)
	for _, e := range item.entries {
		w, _ := u.MeasureText(e.Text, 1)
		width = max(width, w)
	}
	width += 4 * s.ItemSpacing[0]
	rowH := u.LineHeight(1) + 2*s.FramePadding[1]
	u.DrawFilledRect(x, y, width, rowH*float32(len(item.entries)), s.Packed(theme.ColPopupBg))
	for i, e := range item.entries {
		e.SetPosition(x, y+rowH*float32(i))
		e.SetSize(width, rowH)
		e.NormalColor = s.Packed(theme.ColPopupBg)
		e.HoverColor = s.Packed(theme.ColHeaderHovered)
		e.TextColor = s.Packed(theme.ColText)
		e.Render(u, o.Pointer)
	}
}

// handleInput opens and closes dropdowns and runs entries. It reports whether
// the click was consumed by the bar.
func (m *MenuBar) handleInput(justPressedLeft bool) bool {
	if !justPressedLeft {
		return false
	}
	for _, item := range m.items {
		if item.open {
			for _, e := range item.entries {
				if e.HandleInput(true) {
					item.open = false
					return true
				}
			}
		}
	}
	consumed := false
	for _, item := range m.items {
		if item.button.HandleInput(true) {
			item.open = !item.open
			consumed = true
		} else {
			item.open = false
		}
	}
	return consumed
}
