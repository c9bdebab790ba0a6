package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"spritebox/internal/logging"
)

// ErrInvalid marks a configuration that decoded but cannot be used.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	FPSLimit   int        `toml:"fps_limit"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// Loop configures the fixed-timestep clock, in seconds.
type Loop struct {
	Step     float64 `toml:"step"`
	MaxFrame float64 `toml:"max_frame"`
}

type Assets struct {
	Root    string `toml:"root"`
	Images  string `toml:"images"`
	Sprite  string `toml:"sprite"`
	Script  string `toml:"script"`
	Theme   string `toml:"theme"`
	Watch   bool   `toml:"watch"`
	Preload bool   `toml:"preload"`
}

type Log struct {
	Level string `toml:"level"`
}

// Overlay holds the initial visibility of the debug overlay panels.
type Overlay struct {
	ShowMenuBar bool    `toml:"show_menu_bar"`
	ShowFPS     bool    `toml:"show_fps"`
	ShowTheme   bool    `toml:"show_theme"`
	ShowEditor  bool    `toml:"show_editor"`
	Dark        bool    `toml:"dark"`
	Alpha       float32 `toml:"alpha"`
	FontSize    int     `toml:"font_size"`
}

type Config struct {
	Window  Window  `toml:"window"`
	Loop    Loop    `toml:"loop"`
	Assets  Assets  `toml:"assets"`
	Log     Log     `toml:"log"`
	Overlay Overlay `toml:"overlay"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "spritebox",
			Width:      1600,
			Height:     900,
			VSync:      true,
			ClearColor: [4]float32{0, 0, 0, 1},
		},
		Loop: Loop{Step: 0.05, MaxFrame: 0.25},
		Assets: Assets{
			Root:    "assets",
			Images:  "assets/images",
			Sprite:  "assets/images/image1.png",
			Script:  "data/test1.lua",
			Theme:   "data/theme.yaml",
			Watch:   true,
			Preload: true,
		},
		Log: Log{Level: "info"},
		Overlay: Overlay{
			ShowMenuBar: true,
			Dark:        true,
			Alpha:       1.0,
			FontSize:    16,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Warn("config %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes data into cfg, rejecting unknown keys, and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(err, "decode")
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FPSLimit < 0:
		return errors.Wrapf(ErrInvalid, "fps_limit %d", c.Window.FPSLimit)
	case c.Loop.Step <= 0:
		return errors.Wrapf(ErrInvalid, "loop step %v", c.Loop.Step)
	case c.Loop.MaxFrame < c.Loop.Step:
		return errors.Wrapf(ErrInvalid, "max_frame %v below step %v", c.Loop.MaxFrame, c.Loop.Step)
	case c.Overlay.Alpha <= 0 || c.Overlay.Alpha > 1:
		return errors.Wrapf(ErrInvalid, "overlay alpha %v", c.Overlay.Alpha)
	case c.Overlay.FontSize <= 0:
		return errors.Wrapf(ErrInvalid, "font_size %d", c.Overlay.FontSize)
	}
	return nil
}
