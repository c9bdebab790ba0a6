package graphics

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// GLUploader creates 2D textures with RGBA8 storage and nearest filtering.
type GLUploader struct{}

func (GLUploader) Upload(pd *PixelData) (uint32, error) {
	format, err := PixelFormat(pd.Channels)
	if err != nil {
		return 0, err
	}
	if len(pd.Pix) < pd.Width*pd.Height*pd.Channels {
		return 0, errors.Errorf("pixel buffer too short: %d for %dx%dx%d", len(pd.Pix), pd.Width, pd.Height, pd.Channels)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	// grey and grey+alpha sample as (v, v, v, a)
	switch pd.Channels {
	case 1:
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	case 2:
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.GREEN}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	var ptr unsafe.Pointer
	if len(pd.Pix) > 0 {
		ptr = gl.Ptr(pd.Pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(pd.Width), int32(pd.Height), 0, format, gl.UNSIGNED_BYTE, ptr)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture, nil
}

func (GLUploader) Delete(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (GLUploader) Bind(id uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
}
