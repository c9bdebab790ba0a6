// Package theme holds the overlay style: a colour palette plus spacing settings,
// persisted as YAML.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"spritebox/internal/graphics"
	"spritebox/internal/logging"
	"spritebox/internal/sys"
)

// Color is normalized RGBA.
type Color [4]float32

// Packed converts to the draw list vertex colour, folding in a global opacity.
func (c Color) Packed(alpha float32) uint32 {
	return graphics.PackColor(c[0], c[1], c[2], c[3]*alpha)
}

type Palette [ColorCount]Color

// Style is the full overlay look.
type Style struct {
	Alpha          float32    `yaml:"alpha"`
	WindowPadding  [2]float32 `yaml:"window_padding"`
	WindowRounding float32    `yaml:"window_rounding"`
	FramePadding   [2]float32 `yaml:"frame_padding"`
	FrameRounding  float32    `yaml:"frame_rounding"`
	ItemSpacing    [2]float32 `yaml:"item_spacing"`
	ScrollbarSize  float32    `yaml:"scrollbar_size"`
	GrabMinSize    float32    `yaml:"grab_min_size"`
	GrabRounding   float32    `yaml:"grab_rounding"`
	Dark           bool       `yaml:"dark"`
	Colors         Palette    `yaml:"colors"`
}

// Default builds the stock style. Dark mode flips the value of low-saturation
// colours; alpha scales every translucent colour.
func Default(dark bool, alpha float32) *Style {
	s := &Style{
		Alpha:          1.0,
		WindowPadding:  [2]float32{8, 8},
		WindowRounding: 9,
		FramePadding:   [2]float32{4, 3},
		FrameRounding:  3,
		ItemSpacing:    [2]float32{8, 4},
		ScrollbarSize:  16,
		GrabMinSize:    50,
		GrabRounding:   50,
		Dark:           dark,
		Colors:         lightPalette,
	}
	for i := range s.Colors {
		col := &s.Colors[i]
		if dark {
			c := colorful.Color{R: float64(col[0]), G: float64(col[1]), B: float64(col[2])}
			h, sat, v := c.Hsv()
			if sat < 0.1 {
				v = 1 - v
			}
			c = colorful.Hsv(h, sat, v)
			col[0], col[1], col[2] = float32(c.R), float32(c.G), float32(c.B)
			if col[3] < 1 {
				col[3] *= alpha
			}
			continue
		}
		if col[3] < 1 {
			col[0] *= alpha
			col[1] *= alpha
			col[2] *= alpha
			col[3] *= alpha
		}
	}
	return s
}

// Color returns the palette entry for id.
func (s *Style) Color(id ColorID) Color {
	if id < 0 || id >= ColorCount {
		return Color{1, 0, 1, 1}
	}
	return s.Colors[id]
}

// Packed returns the palette entry packed for drawing, with Style.Alpha applied.
func (s *Style) Packed(id ColorID) uint32 {
	return s.Color(id).Packed(s.Alpha)
}

// Save writes the style to a relative path.
func (s *Style) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode theme")
	}
	if err := sys.WriteFile(path, data); err != nil {
		return err
	}
	logging.Info("saved theme to %s", path)
	return nil
}

// Load overlays the keys present in path onto s.
func (s *Style) Load(path string) error {
	data, err := sys.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return errors.Wrapf(err, "decode theme %s", path)
	}
	s.Alpha = graphics.Clamp(s.Alpha, 0.2, 1.0)
	return nil
}

func (p Palette) MarshalYAML() (interface{}, error) {
	out := make(map[string]Color, len(p))
	for i, c := range p {
		out[ColorID(i).String()] = c
	}
	return out, nil
}

func (p *Palette) UnmarshalYAML(node *yaml.Node) error {
	var named map[string]Color
	if err := node.Decode(&named); err != nil {
		return err
	}
	for i := range p {
		if c, ok := named[ColorID(i).String()]; ok {
			p[i] = c
			delete(named, ColorID(i).String())
		}
	}
	for name := range named {
		logging.Warn("theme: ignoring unknown colour %q", name)
	}
	return nil
}
