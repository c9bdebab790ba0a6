package graphics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderRegistryBuildsOnce(t *testing.T) {
	r := NewShaderRegistry()
	builds := 0
	r.Register("flat", func() (*Shader, error) {
		builds++
		return &Shader{ID: 7, Name: "flat"}, nil
	})

	a, err := r.Get("flat")
	require.NoError(t, err)
	b, err := r.Get("flat")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, builds)
}

func TestShaderRegistryUnknown(t *testing.T) {
	r := NewShaderRegistry()
	_, err := r.Get("glow")
	assert.True(t, errors.Is(err, ErrUnknownShader))
}

func TestShaderRegistryDoesNotCacheFailures(t *testing.T) {
	r := NewShaderRegistry()
	calls := 0
	r.Register("flaky", func() (*Shader, error) {
		calls++
		if calls == 1 {
			return nil, errors.Wrap(ErrCompile, "vertex: syntax error")
		}
		return &Shader{ID: 3, Name: "flaky"}, nil
	})

	_, err := r.Get("flaky")
	assert.True(t, errors.Is(err, ErrCompile))

	s, err := r.Get("flaky")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), s.ID)
}

func TestUnlinkedShader(t *testing.T) {
	var s *Shader
	assert.True(t, errors.Is(s.Use(), ErrProgramNotLinked))
	_, err := (&Shader{}).UniformLocation(UniformProjection)
	assert.True(t, errors.Is(err, ErrProgramNotLinked))
}
