package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"spritebox/internal/graphics"
)

// GLBackend draws through one shader program and a shared set of buffers.
type GLBackend struct {
	shader     *graphics.Shader
	buffers    *graphics.DrawBuffers
	clearColor [4]float32
}

// NewGLBackend configures 2D blending state. The shader must expose the
// projection and sampler uniforms of the basic program.
func NewGLBackend(shader *graphics.Shader, clearColor [4]float32) *GLBackend {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	return &GLBackend{
		shader:     shader,
		buffers:    graphics.NewDrawBuffers(),
		clearColor: clearColor,
	}
}

func (b *GLBackend) Begin(width, height int, proj mgl32.Mat4) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Scissor(0, 0, int32(width), int32(height))
	gl.ClearColor(b.clearColor[0], b.clearColor[1], b.clearColor[2], b.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if err := b.shader.Use(); err != nil {
		return err
	}
	if err := b.shader.SetMatrix4(graphics.UniformProjection, &proj[0]); err != nil {
		return err
	}
	return b.shader.SetInt(graphics.UniformTexture, 0)
}

func (b *GLBackend) Flush(dl *graphics.DrawList, width, height int) int {
	return b.buffers.Submit(dl, width, height)
}

func (b *GLBackend) Dispose() {
	b.buffers.Dispose()
}
