// Package scene loads a small YAML scene description (one shader, its
// textures and one mesh) and builds the render objects for it.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/render"
)

// Config is the root of a scene file.
//
//	window: {width: 800, height: 600, title: quad}
//	shader: {vertex: quad.vert, fragment: quad.frag}
//	mesh:
//	  vertices: [...]
//	  attributes:
//	    - {type: float, count: 2}
//	    - {type: float, count: 3, slot: 2}
type Config struct {
	Window     WindowConfig    `yaml:"window"`
	ClearColor [4]float32      `yaml:"clear_color"`
	Shader     ShaderConfig    `yaml:"shader"`
	Textures   []TextureConfig `yaml:"textures,omitempty"`
	Mesh       MeshConfig      `yaml:"mesh"`
}

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// ShaderConfig names the shader stage files.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// TextureConfig describes one texture of the material.
type TextureConfig struct {
	Path    string `yaml:"path"`
	Uniform string `yaml:"uniform,omitempty"`
	Unit    uint32 `yaml:"unit"`
	FlipH   bool   `yaml:"flip_h,omitempty"`
	FlipV   bool   `yaml:"flip_v,omitempty"`
	Wrap    string `yaml:"wrap,omitempty"`
	Filter  string `yaml:"filter,omitempty"`
	Mipmaps bool   `yaml:"mipmaps,omitempty"`
}

// MeshConfig is the geometry of the scene's single object.
type MeshConfig struct {
	Vertices   []float32         `yaml:"vertices"`
	Indices    []uint32          `yaml:"indices,omitempty"`
	DrawMode   string            `yaml:"draw_mode,omitempty"`
	Attributes []AttributeConfig `yaml:"attributes"`
}

// AttributeConfig is one vertex attribute. Attributes without a slot are
// appended after the previous one; attributes with a slot are placed there,
// leaving gaps unused.
type AttributeConfig struct {
	Type       string `yaml:"type"`
	Count      int    `yaml:"count"`
	Normalized bool   `yaml:"normalized,omitempty"`
	Slot       *int   `yaml:"slot,omitempty"`
}

// DefaultConfig returns the settings used for keys missing from a file.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "render",
			VSync:  true,
		},
		ClearColor: [4]float32{0.12, 0.12, 0.14, 1},
	}
}

// Parse decodes and validates a scene file.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the scene file at path. Relative shader and texture paths are
// resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) resolve(dir string) {
	c.Shader.Vertex = resolvePath(dir, c.Shader.Vertex)
	c.Shader.Fragment = resolvePath(dir, c.Shader.Fragment)
	for i := range c.Textures {
		c.Textures[i].Path = resolvePath(dir, c.Textures[i].Path)
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate reports every problem in the config. The mesh's attributes are
// planned to check that the vertex data holds a whole number of vertices.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Shader.Vertex == "" {
		errs = append(errs, errors.New("shader: missing vertex path"))
	}
	if c.Shader.Fragment == "" {
		errs = append(errs, errors.New("shader: missing fragment path"))
	}
	for i, t := range c.Textures {
		if err := t.validate(); err != nil {
			errs = append(errs, fmt.Errorf("textures[%d]: %w", i, err))
		}
	}
	if err := c.Mesh.validate(); err != nil {
		errs = append(errs, fmt.Errorf("mesh: %w", err))
	}
	return errors.Join(errs...)
}

func (t TextureConfig) validate() error {
	if t.Path == "" {
		return errors.New("missing path")
	}
	if t.Unit >= render.MaxTextureUnits {
		return fmt.Errorf("unit %d out of range [0, %d)", t.Unit, render.MaxTextureUnits)
	}
	if _, err := render.ParseTextureWrap(t.Wrap); err != nil {
		return err
	}
	if _, err := render.ParseTextureFilter(t.Filter); err != nil {
		return err
	}
	return nil
}

func (m MeshConfig) validate() error {
	if len(m.Vertices) == 0 {
		return errors.New("no vertices")
	}
	if _, err := render.ParseDrawMode(m.DrawMode); err != nil {
		return err
	}
	if len(m.Attributes) == 0 {
		return errors.New("no attributes")
	}
	layout, err := m.layout(render.DefaultMaxVertexAttribs)
	if err != nil {
		return err
	}
	stride := layout.Plan().Stride
	if size := len(m.Vertices) * 4; size%stride != 0 {
		return fmt.Errorf("%d bytes of vertex data is not a multiple of the %d byte stride", size, stride)
	}
	vertices := uint32(len(m.Vertices) * 4 / stride)
	for i, idx := range m.Indices {
		if idx >= vertices {
			return fmt.Errorf("indices[%d]: %d out of range for %d vertices", i, idx, vertices)
		}
	}
	return nil
}

// layout plans the mesh attributes into a fresh layout with the given
// number of slots.
func (m MeshConfig) layout(slots int) (*render.Layout, error) {
	l := render.NewLayout(slots)
	if err := m.applyLayout(l); err != nil {
		return nil, err
	}
	return l, nil
}

// applyLayout appends or sets every attribute on l.
func (m MeshConfig) applyLayout(l *render.Layout) error {
	for i, a := range m.Attributes {
		typ, err := render.ParseScalarType(a.Type)
		if err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
		if a.Count < 1 || a.Count > 4 {
			return fmt.Errorf("attributes[%d]: count %d out of range [1, 4]", i, a.Count)
		}
		if a.Slot != nil {
			err = l.Set(typ, a.Normalized, a.Count, *a.Slot)
		} else {
			err = l.Append(typ, a.Normalized, a.Count)
		}
		if err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
	}
	return nil
}
