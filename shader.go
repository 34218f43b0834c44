package render

import (
	"fmt"
	"os"
)

// Shader is a linked vertex+fragment program.
type Shader struct {
	dev       ShaderDriver
	id        uint32
	locations map[string]int32
}

// NewShader compiles and links the two stages.
func NewShader(dev ShaderDriver, vertexSrc, fragmentSrc string) (*Shader, error) {
	id, err := dev.CreateProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	Logger().Info("shader program linked", "program", id)
	return &Shader{
		dev:       dev,
		id:        id,
		locations: make(map[string]int32),
	}, nil
}

// LoadShader reads the two stages from files and compiles them.
func LoadShader(dev ShaderDriver, vertexPath, fragmentPath string) (*Shader, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	s, err := NewShader(dev, string(vs), string(fs))
	if err != nil {
		return nil, fmt.Errorf("%s, %s: %w", vertexPath, fragmentPath, err)
	}
	return s, nil
}

// ID returns the program handle, or 0 after Delete.
func (s *Shader) ID() uint32 { return s.id }

// Bind makes the program current.
func (s *Shader) Bind() {
	s.dev.UseProgram(s.id)
}

// Location returns the cached location of a uniform, -1 if the program
// has no such active uniform.
func (s *Shader) Location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.dev.UniformLocation(s.id, name)
	if loc < 0 {
		Logger().Debug("uniform not found", "program", s.id, "uniform", name)
	}
	s.locations[name] = loc
	return loc
}

// The setters bind the program before writing, so they can be called in
// any order relative to other programs.

// SetBool sets a bool uniform.
func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	s.SetInt(name, i)
}

// SetInt sets an int or sampler uniform.
func (s *Shader) SetInt(name string, v int32) {
	s.Bind()
	s.dev.Uniform1i(s.Location(name), v)
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, v float32) {
	s.Bind()
	s.dev.Uniform1f(s.Location(name), v)
}

// SetVec3 sets a vec3 uniform.
func (s *Shader) SetVec3(name string, x, y, z float32) {
	s.Bind()
	s.dev.Uniform3f(s.Location(name), x, y, z)
}

// SetMat4 sets a mat4 uniform from a column-major matrix.
func (s *Shader) SetMat4(name string, m [16]float32) {
	s.Bind()
	s.dev.UniformMatrix4fv(s.Location(name), &m)
}

// Delete releases the program. Further calls are no-ops.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.dev.DeleteProgram(s.id)
	s.id = 0
	clear(s.locations)
}
