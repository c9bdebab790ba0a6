package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a glyph's placement in the atlas and its metrics.
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX int
	AtlasY int
	Width  int
	Height int
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  float32
}

// FontAtlas is a baked white-on-transparent glyph sheet. It is plain pixels; the
// UI uploads it through the texture cache.
type FontAtlas struct {
	Image      *image.NRGBA
	Characters map[rune]FontCharacter
	Ascent     float32
	Descent    float32
}

const atlasWidth = 512

// DefaultFont is the face used by the overlay.
func DefaultFont() []byte {
	return goregular.TTF
}

// BuildFontAtlas rasterizes printable ASCII and Latin-1 at px pixels.
func BuildFontAtlas(ttf []byte, px int) (*FontAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(err, "new face")
	}
	defer func() { _ = face.Close() }()

	var runes []rune
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r <= 255; r++ {
		runes = append(runes, r)
	}

	// First pass sizes the atlas with a simple row packer.
	padding := 1
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, r := range runes {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += dr.Dx() + padding
		if dr.Dy() > rowHeight {
			rowHeight = dr.Dy()
		}
	}
	atlasH := offsetY + rowHeight + padding

	img := image.NewNRGBA(image.Rect(0, 0, atlasWidth, atlasH))
	white := image.NewUniform(color.White)
	characters := make(map[rune]FontCharacter, len(runes))

	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  float32(math.Round(float64(advance) / 64.0)),
		}
		if mask == nil || dr.Empty() {
			characters[r] = fc
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		dst := image.Rect(offsetX, offsetY, offsetX+dr.Dx(), offsetY+dr.Dy())
		draw.DrawMask(img, dst, white, image.Point{}, mask, maskp, draw.Src)

		fc.AtlasX, fc.AtlasY = offsetX, offsetY
		fc.Width, fc.Height = dr.Dx(), dr.Dy()
		characters[r] = fc

		offsetX += dr.Dx() + padding
		if dr.Dy() > rowHeight {
			rowHeight = dr.Dy()
		}
	}

	m := face.Metrics()
	return &FontAtlas{
		Image:      img,
		Characters: characters,
		Ascent:     float32(m.Ascent.Round()),
		Descent:    float32(m.Descent.Round()),
	}, nil
}

// LineHeight is the distance between consecutive baselines at scale 1.
func (a *FontAtlas) LineHeight() float32 {
	return a.Ascent + a.Descent
}

// Glyph returns the metrics for r, falling back to '?' for missing glyphs.
func (a *FontAtlas) Glyph(r rune) (FontCharacter, bool) {
	if fc, ok := a.Characters[r]; ok {
		return fc, true
	}
	fc, ok := a.Characters['?']
	return fc, ok
}

// Measure returns the width and height in pixels that text occupies at scale.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width float32
	for _, r := range text {
		if fc, ok := a.Glyph(r); ok {
			width += fc.Advance * scale
		}
	}
	return width, a.LineHeight() * scale
}

// GlyphQuad is one glyph placed on screen together with its atlas source rect.
type GlyphQuad struct {
	X, Y, W, H float32
	Src        Rect
}

// Layout places text with its top-left corner at (x, y).
func (a *FontAtlas) Layout(text string, x, y, scale float32) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(text))
	baseline := y + a.Ascent*scale
	for _, r := range text {
		fc, ok := a.Glyph(r)
		if !ok {
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			quads = append(quads, GlyphQuad{
				X:   x + fc.BearingX*scale,
				Y:   baseline - fc.BearingY*scale,
				W:   float32(fc.Width) * scale,
				H:   float32(fc.Height) * scale,
				Src: Rect{X: fc.AtlasX, Y: fc.AtlasY, W: fc.Width, H: fc.Height},
			})
		}
		x += fc.Advance * scale
	}
	return quads
}
