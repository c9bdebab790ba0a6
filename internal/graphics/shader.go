package graphics

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"spritebox/internal/logging"
)

var (
	ErrCompile          = errors.New("shader compile failed")
	ErrLink             = errors.New("program link failed")
	ErrUnknownUniform   = errors.New("unknown uniform")
	ErrUnknownShader    = errors.New("unknown shader")
	ErrProgramNotLinked = errors.New("program not linked")
)

// ShaderStage is one source unit of a program, e.g. gl.VERTEX_SHADER.
type ShaderStage struct {
	Kind   uint32
	Source string
}

// Shader is a linked GL program with a lazily filled uniform location cache.
type Shader struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// NewShader compiles and links the given stages.
func NewShader(name string, stages ...ShaderStage) (*Shader, error) {
	program, err := compileProgram(stages)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %q", name)
	}
	logging.Debug("linked shader %q as program %d", name, program)
	return &Shader{ID: program, Name: name, uniforms: make(map[string]int32)}, nil
}

// Use activates the program.
func (s *Shader) Use() error {
	if s == nil || s.ID == 0 {
		return ErrProgramNotLinked
	}
	gl.UseProgram(s.ID)
	return nil
}

// UniformLocation resolves an exact, case-sensitive uniform name.
func (s *Shader) UniformLocation(name string) (int32, error) {
	if s == nil || s.ID == 0 {
		return -1, ErrProgramNotLinked
	}
	if loc, ok := s.uniforms[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, errors.Wrapf(ErrUnknownUniform, "%q in %q", name, s.Name)
	}
	s.uniforms[name] = loc
	return loc, nil
}

func (s *Shader) SetInt(name string, value int32) error {
	loc, err := s.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.Uniform1i(loc, value)
	return nil
}

func (s *Shader) SetFloat(name string, value float32) error {
	loc, err := s.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.Uniform1f(loc, value)
	return nil
}

func (s *Shader) SetMatrix4(name string, value *float32) error {
	loc, err := s.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.UniformMatrix4fv(loc, 1, false, value)
	return nil
}

// Delete frees the program.
func (s *Shader) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	gl.DeleteProgram(s.ID)
	s.ID = 0
	s.uniforms = make(map[string]int32)
}

func compileProgram(stages []ShaderStage) (uint32, error) {
	compiled := make([]uint32, 0, len(stages))
	defer func() {
		for _, sh := range compiled {
			gl.DeleteShader(sh)
		}
	}()

	for _, st := range stages {
		sh, err := compileShader(st.Source, st.Kind)
		if err != nil {
			return 0, err
		}
		compiled = append(compiled, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range compiled {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, errors.Wrap(ErrLink, strings.TrimRight(log, "\x00"))
	}
	for _, sh := range compiled {
		gl.DetachShader(program, sh)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, errors.Wrapf(ErrCompile, "%s: %s", stageName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func stageName(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return "unknown"
}
