package ui

import (
	"image"
	"image/color"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"spritebox/internal/graphics"
)

// Pointer is the mouse state widgets hit-test against.
type Pointer interface {
	CursorPos() (x, y float32)
	LeftDown() bool
}

// WindowPointer reads the pointer from a glfw window.
type WindowPointer struct {
	Window *glfw.Window
}

func (p WindowPointer) CursorPos() (float32, float32) {
	x, y := p.Window.GetCursorPos()
	return float32(x), float32(y)
}

func (p WindowPointer) LeftDown() bool {
	return p.Window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

// Cache keys for the UI's own textures.
const (
	whiteKey = "ui:white"
	fontKey  = "ui:font"
)

// UI draws rectangles, text and sliders into a DrawList. Rectangles sample a 1x1
// white texture so they batch with each other; text batches on the font atlas.
type UI struct {
	dl      *graphics.DrawList
	white   *graphics.Texture
	font    *graphics.FontAtlas
	fontTex *graphics.Texture

	isDraggingSlider bool
	activeSliderID   string
}

// NewUI uploads the white pixel and the font atlas through cache.
func NewUI(cache *graphics.TextureCache, font *graphics.FontAtlas) (*UI, error) {
	px := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	px.Set(0, 0, color.White)
	white, err := cache.LoadImage(whiteKey, px)
	if err != nil {
		return nil, errors.Wrap(err, "ui white texture")
	}
	fontTex, err := cache.LoadImage(fontKey, font.Image)
	if err != nil {
		white.Release()
		return nil, errors.Wrap(err, "ui font texture")
	}
	return &UI{white: white, font: font, fontTex: fontTex}, nil
}

// Begin targets dl for the following draw calls.
func (u *UI) Begin(dl *graphics.DrawList) {
	u.dl = dl
}

// Dispose releases the UI textures.
func (u *UI) Dispose() {
	u.white.Release()
	u.fontTex.Release()
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin).
func (u *UI) DrawFilledRect(x, y, w, h float32, color uint32) {
	if u.dl == nil || w <= 0 || h <= 0 {
		return
	}
	u.dl.AddSprite(u.white, mgl32.Vec2{x, y}, w, h, graphics.Rect{W: 1, H: 1}, color)
}

// DrawOutline draws a one-pixel-wide frame.
func (u *UI) DrawOutline(x, y, w, h float32, color uint32) {
	u.DrawFilledRect(x, y, w, 1, color)
	u.DrawFilledRect(x, y+h-1, w, 1, color)
	u.DrawFilledRect(x, y, 1, h, color)
	u.DrawFilledRect(x+w-1, y, 1, h, color)
}

// DrawText draws text with its top-left corner at (x, y).
func (u *UI) DrawText(text string, x, y, scale float32, color uint32) {
	if u.dl == nil {
		return
	}
	for _, q := range u.font.Layout(text, x, y, scale) {
		u.dl.AddSprite(u.fontTex, mgl32.Vec2{q.X, q.Y}, q.W, q.H, q.Src, color)
	}
}

// MeasureText returns the width and line height of text at scale.
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	return u.font.Measure(text, scale)
}

// LineHeight is the baseline-to-baseline distance at scale.
func (u *UI) LineHeight(scale float32) float32 {
	return u.font.LineHeight() * scale
}

// DrawSlider draws a horizontal slider with value in [0,1] and returns the new
// value. Dragging captures the pointer until release; steps > 1 snaps the value
// and draws tick marks. sliderID must be unique among sliders drawn this frame.
func (u *UI) DrawSlider(x, y, w, h, value float32, p Pointer, steps int, sliderID string, track, thumb uint32) float32 {
	u.DrawFilledRect(x, y, w, h, track)

	if steps > 1 {
		tickHeight := h * 0.6
		tickY := y + (h-tickHeight)*0.5
		tickWidth := float32(2)
		stepSpacing := max(steps/10, 1)
		for i := 0; i < steps; i++ {
			if i != 0 && i != steps-1 && i%stepSpacing != 0 {
				continue
			}
			ratio := float32(i) / float32(steps-1)
			u.DrawFilledRect(x+ratio*w-tickWidth*0.5, tickY, tickWidth, tickHeight, thumb&0x30ffffff)
		}
	}

	if p != nil {
		mouseX, mouseY := p.CursorPos()
		leftDown := p.LeftDown()
		inside := mouseY >= y && mouseY <= y+h && mouseX >= x && mouseX <= x+w

		switch {
		case u.isDraggingSlider && u.activeSliderID == sliderID:
			if leftDown {
				value = snap((mouseX-x)/w, steps)
			} else {
				u.isDraggingSlider = false
				u.activeSliderID = ""
			}
		case !u.isDraggingSlider && leftDown && inside:
			u.isDraggingSlider = true
			u.activeSliderID = sliderID
			value = snap((mouseX-x)/w, steps)
		}
	}

	thumbWidth := float32(20)
	u.DrawFilledRect(x+(w-thumbWidth)*value, y, thumbWidth, h, thumb)
	return value
}

func snap(v float32, steps int) float32 {
	v = graphics.Clamp(v, 0, 1)
	if steps > 1 {
		denom := float32(steps - 1)
		idx := graphics.Clamp(int(v*denom+0.5), 0, steps-1)
		v = float32(idx) / denom
	}
	return v
}
