package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spritebox.toml")
	data := `
[window]
width = 800
height = 600
fps_limit = 144

[loop]
step = 0.02

[overlay]
show_fps = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 144, cfg.Window.FPSLimit)
	assert.Equal(t, "spritebox", cfg.Window.Title)
	assert.InDelta(t, 0.02, cfg.Loop.Step, 1e-9)
	assert.InDelta(t, 0.25, cfg.Loop.MaxFrame, 1e-9)
	assert.True(t, cfg.Overlay.ShowFPS)
	assert.True(t, cfg.Overlay.ShowMenuBar)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("[window]\nwidht = 10\n"), &cfg)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":    func(c *Config) { c.Window.Width = 0 },
		"zero step":     func(c *Config) { c.Loop.Step = 0 },
		"short frame":   func(c *Config) { c.Loop.MaxFrame = 0.01 },
		"alpha too big": func(c *Config) { c.Overlay.Alpha = 1.5 },
		"negative fps":  func(c *Config) { c.Window.FPSLimit = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestFPSLimitClamp(t *testing.T) {
	t.Cleanup(func() { SetFPSLimit(0) })
	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(60)
	assert.Equal(t, 60, GetFPSLimit())
}
