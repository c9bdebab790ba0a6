package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageChannels(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Equal(t, 1, FromImage(gray).Channels)

	opaque := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}
	assert.Equal(t, 3, FromImage(opaque).Channels)

	clear := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	clear.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	pd := FromImage(clear)
	assert.Equal(t, 4, pd.Channels)
	assert.Equal(t, []byte{10, 20, 30, 40, 0, 0, 0, 0}, pd.Pix)
}

func TestFromImageGrayAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 50})
	img.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	pd := FromImage(img)
	assert.Equal(t, 2, pd.Channels)
	assert.Equal(t, []byte{200, 50, 255, 255}, pd.Pix)

	path := filepath.Join(t.TempDir(), "shadow.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	pd, err = DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, pd.Channels)
	assert.Len(t, pd.Pix, 2*1*2)
}

func TestPixelFormat(t *testing.T) {
	want := map[int]uint32{1: gl.RED, 2: gl.RG, 3: gl.RGB, 4: gl.RGBA}
	for ch, f := range want {
		got, err := PixelFormat(ch)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := PixelFormat(0)
	assert.True(t, errors.Is(err, ErrUnsupportedChannels))
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 128})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	pd, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, pd.Width)
	assert.Equal(t, 2, pd.Height)
	assert.Equal(t, 4, pd.Channels)
	assert.Len(t, pd.Pix, 3*2*4)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestPackColor(t *testing.T) {
	assert.Equal(t, ColorWhite, PackColor(1, 1, 1, 1))
	assert.Equal(t, uint32(0xff0000ff), PackColor(1, 0, 0, 1))
	assert.Equal(t, uint32(0xff000000), PackColor(-1, 0, 0, 2))
	r, g, b, a := UnpackColor(0x80ff0000)
	assert.InDelta(t, 0, r, 1e-6)
	assert.InDelta(t, 0, g, 1e-6)
	assert.InDelta(t, 1, b, 1e-6)
	assert.InDelta(t, 128.0/255, a, 1e-6)
}
