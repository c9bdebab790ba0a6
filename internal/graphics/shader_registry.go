package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// BasicShader is the name of the built-in sprite program.
const BasicShader = "basic"

// Uniform names used by the basic program.
const (
	UniformProjection = "u_projmatrix"
	UniformTexture    = "u_tex"
)

const basicVertexSource = `#version 410 core
layout(location = 0) in vec2 in_position;
layout(location = 1) in vec2 in_texcoord;
layout(location = 2) in vec2 in_normal;
layout(location = 3) in vec4 in_color;

uniform mat4 u_projmatrix;

out vec2 v_texcoord;
out vec4 v_color;

void main() {
	v_texcoord = in_texcoord;
	v_color = in_color;
	gl_Position = u_projmatrix * vec4(in_position, 0.0, 1.0);
}
`

const basicFragmentSource = `#version 410 core
in vec2 v_texcoord;
in vec4 v_color;

uniform sampler2D u_tex;

out vec4 out_color;

void main() {
	out_color = v_color * texture(u_tex, v_texcoord);
}
`

// ShaderBuilder produces a program on first request.
type ShaderBuilder func() (*Shader, error)

// ShaderRegistry builds each named program once and hands out the same instance afterwards.
// It is confined to the render thread.
type ShaderRegistry struct {
	builders map[string]ShaderBuilder
	built    map[string]*Shader
}

// NewShaderRegistry returns a registry that knows the basic program.
func NewShaderRegistry() *ShaderRegistry {
	r := &ShaderRegistry{
		builders: make(map[string]ShaderBuilder),
		built:    make(map[string]*Shader),
	}
	r.Register(BasicShader, func() (*Shader, error) {
		return NewShader(BasicShader,
			ShaderStage{Kind: gl.VERTEX_SHADER, Source: basicVertexSource},
			ShaderStage{Kind: gl.FRAGMENT_SHADER, Source: basicFragmentSource},
		)
	})
	return r
}

// Register adds or replaces a builder. An already built program under name is kept.
func (r *ShaderRegistry) Register(name string, b ShaderBuilder) {
	r.builders[name] = b
}

// Get returns the program for name, building it on first use.
func (r *ShaderRegistry) Get(name string) (*Shader, error) {
	if s, ok := r.built[name]; ok {
		return s, nil
	}
	b, ok := r.builders[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownShader, name)
	}
	s, err := b()
	if err != nil {
		return nil, err
	}
	r.built[name] = s
	return s, nil
}

// Dispose deletes every built program.
func (r *ShaderRegistry) Dispose() {
	for name, s := range r.built {
		s.Delete()
		delete(r.built, name)
	}
}
