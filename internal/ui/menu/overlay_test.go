package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/ui"
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/profiling"
	"spritebox/internal/textview"
	"spritebox/internal/theme"
)

type nopUploader struct{ next uint32 }

func (n *nopUploader) Upload(*graphics.PixelData) (uint32, error) { n.next++; return n.next, nil }
func (n *nopUploader) Delete(uint32)                              {}
func (n *nopUploader) Bind(uint32)                                {}

type pointer struct{ x, y float32 }

func (p *pointer) CursorPos() (float32, float32) { return p.x, p.y }
func (p *pointer) LeftDown() bool                { return false }

func newOverlay(t *testing.T, panels Panels) (*Overlay, *pointer) {
	t.Helper()
	atlas, err := graphics.BuildFontAtlas(graphics.DefaultFont(), 14)
	require.NoError(t, err)
	u, err := ui.NewUI(graphics.NewTextureCache(&nopUploader{}), atlas)
	require.NoError(t, err)

	script := textview.New()
	script.SetText("print('hello')\nreturn 1\n")
	p := &pointer{x: -1, y: -1}
	o := NewOverlay(Config{
		UI:        u,
		Pointer:   p,
		Panels:    &panels,
		Style:     theme.Default(false, 1),
		Hist:      &profiling.FrameTimeHistogram{},
		Script:    script,
		ThemePath: t.TempDir() + "/theme.yaml",
		Alpha:     1,
	})
	return o, p
}

func renderAll(t *testing.T, o *Overlay) *graphics.DrawList {
	t.Helper()
	dl := graphics.NewDrawList()
	for _, l := range o.Layers() {
		require.NoError(t, l.Render(renderer.RenderContext{DrawList: dl, Width: 1600, Height: 900}))
	}
	return dl
}

func TestHiddenPanelsDrawNothing(t *testing.T) {
	o, _ := newOverlay(t, Panels{})
	dl := renderAll(t, o)
	assert.Zero(t, dl.Len())
	assert.Len(t, o.Layers(), 4)
}

func TestAllPanelsDraw(t *testing.T) {
	o, _ := newOverlay(t, Panels{MenuBar: true, FPS: true, Theme: true, Editor: true})
	o.Hist.Record(16_000_000)
	dl := renderAll(t, o)
	// white rects and glyphs land in two batches
	assert.Equal(t, 2, dl.Len())
}

func TestFileQuit(t *testing.T) {
	o, p := newOverlay(t, Panels{MenuBar: true})
	renderAll(t, o)

	p.x, p.y = 5, 5
	renderAll(t, o)
	assert.Equal(t, ActionNone, o.Update(true))
	require.True(t, o.menuBar.items[0].open)

	p.y = o.menuBar.Height() + 3
	renderAll(t, o)
	assert.Equal(t, ActionQuit, o.Update(true))
	assert.False(t, o.menuBar.items[0].open)
}

func TestExamplesTogglePanels(t *testing.T) {
	o, p := newOverlay(t, Panels{MenuBar: true})
	renderAll(t, o)

	examples := o.menuBar.items[1]
	p.x, p.y = examples.button.X+3, 5
	renderAll(t, o)
	o.Update(true)
	require.True(t, examples.open)

	// second entry is the theme panel
	renderAll(t, o)
	p.y = examples.entries[1].Y + 2
	renderAll(t, o)
	assert.Equal(t, ActionNone, o.Update(true))
	assert.True(t, o.Panels.Theme)
	assert.False(t, o.Panels.FPS)
}

func TestClickOutsideClosesDropdown(t *testing.T) {
	o, p := newOverlay(t, Panels{MenuBar: true})
	p.x, p.y = 5, 5
	renderAll(t, o)
	o.Update(true)
	require.True(t, o.menuBar.items[0].open)

	p.x, p.y = 800, 800
	renderAll(t, o)
	o.Update(true)
	assert.False(t, o.menuBar.items[0].open)
}

func TestDarkToggle(t *testing.T) {
	o, p := newOverlay(t, Panels{Theme: true})
	renderAll(t, o)

	p.x, p.y = o.theme.dark.X+2, o.theme.dark.Y+2
	renderAll(t, o)
	o.Update(true)
	assert.True(t, o.Style.Dark)
	assert.Equal(t, *theme.Default(true, 1), *o.Style)
}

func TestResetTheme(t *testing.T) {
	o, _ := newOverlay(t, Panels{})
	o.Style.Colors[theme.ColText] = theme.Color{1, 0, 0, 1}
	o.Style.Alpha = 0.5

	o.ResetTheme()
	assert.True(t, o.Panels.Theme)
	assert.Equal(t, *theme.Default(false, 1), *o.Style)
}

func TestSaveTheme(t *testing.T) {
	o, p := newOverlay(t, Panels{Theme: true})
	o.ThemePath = "theme.yaml"
	t.Chdir(t.TempDir())
	renderAll(t, o)

	p.x, p.y = o.theme.save.X+2, o.theme.save.Y+2
	renderAll(t, o)
	o.Update(true)

	loaded := theme.Default(true, 1)
	require.NoError(t, loaded.Load("theme.yaml"))
	assert.False(t, loaded.Dark)
}

func TestTextPanelVisibleLines(t *testing.T) {
	o, _ := newOverlay(t, Panels{Editor: true})
	renderAll(t, o)
	assert.Greater(t, o.text.VisibleLines(), 10)
}
