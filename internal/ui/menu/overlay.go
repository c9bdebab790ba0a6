package menu

import (
	"spritebox/internal/graphics/renderables/ui"
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/profiling"
	"spritebox/internal/textview"
	"spritebox/internal/theme"
	"spritebox/internal/ui/widget"
)

// Overlay is the debug UI drawn over the sprites. Each panel is its own render
// layer so panels stack in a fixed order: script viewer, theme editor, frame
// times, then the menu bar with its dropdowns on top.
type Overlay struct {
	UI      *ui.UI
	Pointer ui.Pointer
	Panels  *Panels
	Style   *theme.Style
	Hist    *profiling.FrameTimeHistogram
	Script  *textview.Buffer
	Stats   Stats

	ThemePath string
	baseAlpha float32

	width, height int

	menuBar *MenuBar
	frame   *FramePanel
	theme   *ThemePanel
	text    *TextPanel

	quit bool
}

// Config bundles what NewOverlay needs.
type Config struct {
	UI        *ui.UI
	Pointer   ui.Pointer
	Panels    *Panels
	Style     *theme.Style
	Hist      *profiling.FrameTimeHistogram
	Script    *textview.Buffer
	ThemePath string
	Alpha     float32
}

func NewOverlay(c Config) *Overlay {
	o := &Overlay{
		UI:        c.UI,
		Pointer:   c.Pointer,
		Panels:    c.Panels,
		Style:     c.Style,
		Hist:      c.Hist,
		Script:    c.Script,
		ThemePath: c.ThemePath,
		baseAlpha: c.Alpha,
	}
	o.menuBar = newMenuBar(o)
	o.frame = &FramePanel{o: o}
	o.theme = newThemePanel(o)
	o.text = &TextPanel{o: o}
	return o
}

// Layers returns the render layers, bottom first.
func (o *Overlay) Layers() []renderer.Renderable {
	return []renderer.Renderable{o.text, o.theme, o.frame, o.menuBar}
}

// Update routes a click to the topmost visible panel and reports app-level actions.
func (o *Overlay) Update(justPressedLeft bool) Action {
	o.quit = false
	if o.Panels.MenuBar && o.menuBar.handleInput(justPressedLeft) {
		return o.action()
	}
	if o.Panels.Theme {
		o.theme.handleInput(justPressedLeft)
	}
	return o.action()
}

func (o *Overlay) action() Action {
	if o.quit {
		return ActionQuit
	}
	return ActionNone
}

// ResetTheme restores the default style and shows the theme editor.
func (o *Overlay) ResetTheme() {
	*o.Style = *theme.Default(o.Style.Dark, o.baseAlpha)
	o.Panels.Theme = true
}

// Dispose releases the UI textures. Panel layers own nothing.
func (o *Overlay) Dispose() {
	o.UI.Dispose()
}

func (o *Overlay) begin(ctx renderer.RenderContext) {
	o.width, o.height = ctx.Width, ctx.Height
	o.UI.Begin(ctx.DrawList)
}

// panel draws a titled window background and returns the content origin.
func (o *Overlay) panel(title string, x, y, w, h float32) (float32, float32) {
	s := o.Style
	titleH := o.UI.LineHeight(1) + 4
	o.UI.DrawFilledRect(x, y, w, h, s.Packed(theme.ColWindowBg))
	o.UI.DrawFilledRect(x, y, w, titleH, s.Packed(theme.ColTitleBgActive))
	o.UI.DrawOutline(x, y, w, h, s.Packed(theme.ColBorder))
	o.UI.DrawText(title, x+s.WindowPadding[0], y+2, 1, s.Packed(theme.ColText))
	return x + s.WindowPadding[0], y + titleH + s.WindowPadding[1]
}

func styleButton(b *widget.Button, s *theme.Style) {
	b.NormalColor = s.Packed(theme.ColButton)
	b.HoverColor = s.Packed(theme.ColButtonHovered)
	b.TextColor = s.Packed(theme.ColText)
}

// layer holds the Renderable methods every panel shares.
type layer struct{}

func (layer) Init() error                   { return nil }
func (layer) Dispose()                      {}
func (layer) SetViewport(width, height int) {}

// ScrollPage is how many lines PageUp and PageDown move the script viewer.
func (o *Overlay) ScrollPage() int {
	return o.text.VisibleLines()
}
