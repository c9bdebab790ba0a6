package theme

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColor(t *testing.T, want, got Color) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "channel %d", i)
	}
}

func TestDefaultLight(t *testing.T) {
	s := Default(false, 1)
	assertColor(t, Color{0, 0, 0, 1}, s.Color(ColText))
	assertColor(t, Color{0.88, 0.88, 0.88, 0.94}, s.Color(ColWindowBg))
}

func TestDefaultLightScalesTranslucent(t *testing.T) {
	s := Default(false, 0.5)
	assertColor(t, Color{0.44, 0.44, 0.44, 0.47}, s.Color(ColWindowBg))
	assertColor(t, Color{0, 0, 0, 1}, s.Color(ColText))
}

func TestDefaultDarkInvertsGreys(t *testing.T) {
	s := Default(true, 0.5)
	assertColor(t, Color{1, 1, 1, 1}, s.Color(ColText))
	assertColor(t, Color{0.12, 0.12, 0.12, 0.47}, s.Color(ColWindowBg))
	// saturated colours keep their value
	assertColor(t, Color{0.26, 0.59, 0.98, 1}, s.Color(ColCheckMark))
}

func TestColorNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := ColorID(0); i < ColorCount; i++ {
		name := i.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", ColorCount.String())
}

func TestSaveLoadOverlay(t *testing.T) {
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	s := Default(true, 1)
	s.Alpha = 0.8
	s.Colors[ColButton] = Color{1, 0, 0, 1}
	require.NoError(t, s.Save("data/theme.yaml"))

	loaded := Default(false, 1)
	require.NoError(t, loaded.Load("data/theme.yaml"))
	assert.InDelta(t, 0.8, loaded.Alpha, 1e-6)
	assert.True(t, loaded.Dark)
	assertColor(t, Color{1, 0, 0, 1}, loaded.Color(ColButton))

	require.NoError(t, os.WriteFile("partial.yaml", []byte("alpha: 0.1\ncolors:\n  text: [0.5, 0.5, 0.5, 1]\n"), 0o644))
	partial := Default(false, 1)
	require.NoError(t, partial.Load("partial.yaml"))
	assert.InDelta(t, 0.2, partial.Alpha, 1e-6, "alpha is clamped")
	assertColor(t, Color{0.5, 0.5, 0.5, 1}, partial.Color(ColText))
	assertColor(t, Color{0.88, 0.88, 0.88, 0.94}, partial.Color(ColWindowBg))
	assert.Equal(t, float32(50), partial.GrabMinSize)
}
