package graphics

// Rect is an integer rectangle in texel or pixel space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) X2() int { return r.X + r.W }
func (r Rect) Y2() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// ColorWhite leaves sampled texels untouched.
const ColorWhite uint32 = 0xffffffff

// PackColor packs normalized RGBA into the byte order the colour attribute reads:
// R in the low byte, A in the high byte.
func PackColor(r, g, b, a float32) uint32 {
	return uint32(unit(r)) | uint32(unit(g))<<8 | uint32(unit(b))<<16 | uint32(unit(a))<<24
}

// UnpackColor reverses PackColor.
func UnpackColor(c uint32) (r, g, b, a float32) {
	return float32(c&0xff) / 255, float32(c>>8&0xff) / 255, float32(c>>16&0xff) / 255, float32(c>>24) / 255
}

func unit(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
