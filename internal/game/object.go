package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"spritebox/internal/graphics"
	"spritebox/internal/logging"
)

var (
	ErrNoFrames        = errors.New("object has no frames")
	ErrFrameOutOfRange = errors.New("frame index out of range")
	ErrNoTexture       = errors.New("object has no texture")
)

// defaultFrame is the texel rectangle SetTexture starts every object with.
var defaultFrame = graphics.Rect{X: 0, Y: 0, W: 31, H: 31}

// TextureLoader is the part of the texture cache an Object needs.
type TextureLoader interface {
	Load(path string) (*graphics.Texture, error)
}

// Object is a positioned sprite with a list of frame rectangles into its texture.
type Object struct {
	ID uuid.UUID

	texture  *graphics.Texture
	shader   *graphics.Shader
	location mgl32.Vec2
	width    float32
	height   float32
	frames   []graphics.Rect
	frame    int
	color    uint32
}

func NewObject() *Object {
	return &Object{ID: uuid.New(), color: graphics.ColorWhite}
}

// SetTexture loads path, replacing any previous texture, and resets the frame
// list to the single default 31x31 rectangle.
func (o *Object) SetTexture(loader TextureLoader, path string) error {
	tex, err := loader.Load(path)
	if err != nil {
		return errors.Wrapf(err, "object %s", o.ID)
	}
	o.texture.Release()
	o.texture = tex
	o.frames = append(o.frames[:0], defaultFrame)
	o.frame = 0
	o.width = float32(defaultFrame.W)
	o.height = float32(defaultFrame.H)
	logging.With("object", o.ID).Debug("texture set", "path", path, "id", tex.ID())
	return nil
}

func (o *Object) Texture() *graphics.Texture {
	return o.texture
}

// Draw enqueues the current frame into dl.
func (o *Object) Draw(dl *graphics.DrawList) error {
	if len(o.frames) == 0 {
		return errors.Wrapf(ErrNoFrames, "object %s", o.ID)
	}
	if o.frame < 0 || o.frame >= len(o.frames) {
		return errors.Wrapf(ErrFrameOutOfRange, "object %s: frame %d of %d", o.ID, o.frame, len(o.frames))
	}
	if o.texture == nil || o.texture.ID() == 0 {
		return errors.Wrapf(ErrNoTexture, "object %s", o.ID)
	}
	dl.AddSprite(o.texture, o.location, o.width, o.height, o.frames[o.frame], o.color)
	return nil
}

func (o *Object) SetLocation(x, y float32) {
	o.location = mgl32.Vec2{x, y}
}

func (o *Object) Location() mgl32.Vec2 {
	return o.location
}

// Move offsets the location.
func (o *Object) Move(dx, dy float32) {
	o.location = o.location.Add(mgl32.Vec2{dx, dy})
}

func (o *Object) SetSize(w, h float32) {
	o.width, o.height = w, h
}

func (o *Object) Width() float32  { return o.width }
func (o *Object) Height() float32 { return o.height }

func (o *Object) AttachShader(s *graphics.Shader) {
	o.shader = s
}

func (o *Object) Shader() *graphics.Shader {
	return o.shader
}

// SetFrames replaces the frame list and rewinds to the first frame.
func (o *Object) SetFrames(frames []graphics.Rect) {
	o.frames = append(o.frames[:0], frames...)
	o.frame = 0
}

func (o *Object) Frames() []graphics.Rect {
	return o.frames
}

func (o *Object) SetFrame(i int) error {
	if i < 0 || i >= len(o.frames) {
		return errors.Wrapf(ErrFrameOutOfRange, "frame %d of %d", i, len(o.frames))
	}
	o.frame = i
	return nil
}

func (o *Object) Frame() int {
	return o.frame
}

func (o *Object) SetColor(c uint32) {
	o.color = c
}

// Release drops the texture reference.
func (o *Object) Release() {
	o.texture.Release()
	o.texture = nil
}
