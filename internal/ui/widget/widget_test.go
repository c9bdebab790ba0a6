package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/ui"
)

type nopUploader struct{ next uint32 }

func (n *nopUploader) Upload(*graphics.PixelData) (uint32, error) { n.next++; return n.next, nil }
func (n *nopUploader) Delete(uint32)                              {}
func (n *nopUploader) Bind(uint32)                                {}

type pointer struct {
	x, y float32
	down bool
}

func (p *pointer) CursorPos() (float32, float32) { return p.x, p.y }
func (p *pointer) LeftDown() bool                { return p.down }

func newUI(t *testing.T) *ui.UI {
	t.Helper()
	atlas, err := graphics.BuildFontAtlas(graphics.DefaultFont(), 12)
	require.NoError(t, err)
	u, err := ui.NewUI(graphics.NewTextureCache(&nopUploader{}), atlas)
	require.NoError(t, err)
	u.Begin(graphics.NewDrawList())
	return u
}

func TestButtonClick(t *testing.T) {
	u := newUI(t)
	clicks := 0
	b := NewButton("Save theme", 10, 10, 100, 20, func() { clicks++ })

	b.Render(u, &pointer{x: 500, y: 500})
	assert.False(t, b.HandleInput(true))

	b.Render(u, &pointer{x: 20, y: 15})
	assert.True(t, b.IsHovered)
	assert.False(t, b.HandleInput(false))
	assert.True(t, b.HandleInput(true))
	assert.Equal(t, 1, clicks)
}

func TestToggleFlips(t *testing.T) {
	u := newUI(t)
	var seen []bool
	tg := NewToggle("Dark", 0, 0, 120, 16, false, func(on bool) { seen = append(seen, on) })
	p := &pointer{x: 4, y: 4}

	tg.Render(u, p)
	tg.HandleInput(true)
	tg.Render(u, p)
	tg.HandleInput(true)
	assert.Equal(t, []bool{true, false}, seen)
	assert.False(t, tg.IsOn)
}

func TestSliderMapsRange(t *testing.T) {
	u := newUI(t)
	var got float32
	s := NewSlider(0, 0, 100, 10, 0.2, 1.0, 1.0, 0, "alpha", func(v float32) { got = v })

	s.Render(u, &pointer{x: 50, y: 5, down: true})
	assert.InDelta(t, 0.6, got, 1e-5)
	assert.InDelta(t, 0.6, s.Value, 1e-5)
	assert.False(t, s.HandleInput(true))
}

func TestNilPointerNeverHovers(t *testing.T) {
	u := newUI(t)
	b := NewButton("x", 0, 0, 10, 10, nil)
	b.Render(u, nil)
	assert.False(t, b.IsHovered)
}
