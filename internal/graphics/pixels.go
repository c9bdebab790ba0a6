package graphics

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecode              = errors.New("decode image")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// PixelData is a decoded image with tightly packed rows of Channels bytes per pixel.
type PixelData struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// DecodeFile reads and decodes an image file.
func DecodeFile(path string) (*PixelData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts img to the smallest of grey, grey+alpha, RGB or RGBA that
// holds it without loss of channels. Translucent images whose pixels all have
// R == G == B come out as grey+alpha, since PNG decodes those to NRGBA.
func FromImage(img image.Image) *PixelData {
	b := img.Bounds()
	channels := 3
	opaque := isOpaque(img)
	if isGray(img.ColorModel()) || (!opaque && hasGrayPixels(img)) {
		channels = 1
	}
	if !opaque {
		channels++
	}

	pd := &PixelData{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      make([]byte, 0, b.Dx()*b.Dy()*channels),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				pd.Pix = append(pd.Pix, c.R)
			case 2:
				pd.Pix = append(pd.Pix, c.R, c.A)
			case 3:
				pd.Pix = append(pd.Pix, c.R, c.G, c.B)
			default:
				pd.Pix = append(pd.Pix, c.R, c.G, c.B, c.A)
			}
		}
	}
	return pd
}

// PixelFormat maps a channel count to the GL upload format.
func PixelFormat(channels int) (uint32, error) {
	switch channels {
	case 1:
		return gl.RED, nil
	case 2:
		return gl.RG, nil
	case 3:
		return gl.RGB, nil
	case 4:
		return gl.RGBA, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedChannels, "%d", channels)
}

func isGray(m color.Model) bool {
	return m == color.GrayModel || m == color.Gray16Model
}

func hasGrayPixels(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != c.G || c.G != c.B {
				return false
			}
		}
	}
	return true
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
