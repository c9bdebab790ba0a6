package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFontAtlas(t *testing.T) {
	atlas, err := BuildFontAtlas(DefaultFont(), 16)
	require.NoError(t, err)

	assert.Equal(t, atlasWidth, atlas.Image.Bounds().Dx())
	assert.Greater(t, atlas.LineHeight(), float32(0))

	a, ok := atlas.Glyph('A')
	require.True(t, ok)
	assert.Greater(t, a.Width, 0)
	assert.Greater(t, a.Advance, float32(0))
	assert.LessOrEqual(t, a.AtlasX+a.Width, atlas.Image.Bounds().Dx())
	assert.LessOrEqual(t, a.AtlasY+a.Height, atlas.Image.Bounds().Dy())

	space, ok := atlas.Glyph(' ')
	require.True(t, ok)
	assert.Zero(t, space.Width)
	assert.Greater(t, space.Advance, float32(0))
}

func TestMeasureAndLayout(t *testing.T) {
	atlas, err := BuildFontAtlas(DefaultFont(), 16)
	require.NoError(t, err)

	w1, h1 := atlas.Measure("ab", 1)
	w2, h2 := atlas.Measure("ab", 2)
	assert.InDelta(t, w1*2, w2, 1e-3)
	assert.InDelta(t, h1*2, h2, 1e-3)

	quads := atlas.Layout("a b", 10, 20, 1)
	require.Len(t, quads, 2, "space has no quad")
	assert.Greater(t, quads[1].X, quads[0].X)
	for _, q := range quads {
		assert.GreaterOrEqual(t, q.Y, float32(20)-1)
	}
}

func TestGlyphFallback(t *testing.T) {
	atlas, err := BuildFontAtlas(DefaultFont(), 12)
	require.NoError(t, err)
	q, _ := atlas.Glyph('?')
	got, ok := atlas.Glyph('世')
	assert.True(t, ok)
	assert.Equal(t, q, got)
}
