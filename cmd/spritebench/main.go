package main

import (
	"flag"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"spritebox/internal/fatal"
	"spritebox/internal/graphics"
	"spritebox/internal/logging"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	spriteSize   = 32
)

var (
	count    = flag.Int("n", 10000, "sprites drawn per frame")
	sprite   = flag.String("sprite", "", "image to draw; a generated checkerboard when empty")
	duration = flag.Duration("for", 0, "stop after this long; 0 runs until the window closes")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	fatal.If(*count <= 0, "sprite count must be positive, got %d", *count)
	fatal.Check(run())
	fatal.Quit()
}

func run() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "spritebench", nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	// no vsync, raw throughput
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init gl")
	}

	cache := graphics.NewTextureCache(graphics.GLUploader{})
	tex, err := loadSprite(cache)
	if err != nil {
		return err
	}
	defer tex.Release()

	shaders := graphics.NewShaderRegistry()
	defer shaders.Dispose()
	shader, err := shaders.Get(graphics.BasicShader)
	if err != nil {
		return err
	}

	buffers := graphics.NewDrawBuffers()
	defer buffers.Dispose()

	width, height := window.GetFramebufferSize()
	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	if err := shader.Use(); err != nil {
		return err
	}
	if err := shader.SetMatrix4(graphics.UniformProjection, &proj[0]); err != nil {
		return err
	}
	if err := shader.SetInt(graphics.UniformTexture, 0); err != nil {
		return err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)

	cols := max(width/spriteSize, 1)
	dl := graphics.NewDrawList()
	frame := graphics.Rect{W: tex.Width(), H: tex.Height()}

	frames := 0
	last := time.Now()
	start := last
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	logging.Info("drawing %d sprites per frame", *count)
	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		if *duration > 0 && time.Since(start) >= *duration {
			break
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		for i := 0; i < *count; i++ {
			x := float32((i % cols) * spriteSize % width)
			y := float32((i / cols) * spriteSize % height)
			dl.AddSprite(tex, mgl32.Vec2{x, y}, spriteSize, spriteSize, frame, graphics.ColorWhite)
		}
		buffers.Submit(dl, width, height)
		dl.Clear()

		window.SwapBuffers()
		glfw.PollEvents()
		frames++

		select {
		case <-fpsTicker.C:
			now := time.Now()
			if elapsed := now.Sub(last).Seconds(); elapsed > 0 {
				fps := float64(frames) / elapsed
				logging.Info("FPS: %.0f  sprites/s: %.0f", fps, fps*float64(*count))
			}
			frames = 0
			last = now
		default:
		}
	}
	return nil
}

func loadSprite(cache *graphics.TextureCache) (*graphics.Texture, error) {
	if *sprite != "" {
		return cache.Load(*sprite)
	}
	img := image.NewNRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			c := color.NRGBA{R: 255, G: 160, B: 32, A: 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{R: 32, G: 96, B: 255, A: 200}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return cache.LoadImage("bench:checker", img)
}
