package scene_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/rendertest"
	"github.com/go-theft-auto/render/scene"
)

const quadScene = `
window:
  width: 640
  height: 480
  title: quad
shader:
  vertex: quad.vert
  fragment: quad.frag
textures:
  - path: checker.png
    uniform: checker
    unit: 1
    flip_v: true
    filter: linear
mesh:
  vertices: [
    -0.5, -0.5,  1, 0, 0,
     0.5, -0.5,  0, 1, 0,
     0.5,  0.5,  0, 0, 1,
    -0.5,  0.5,  1, 1, 1
  ]
  indices: [0, 1, 2, 2, 3, 0]
  attributes:
    - {type: float, count: 2}
    - {type: float, count: 3, slot: 2}
`

// writeScene writes the quad scene and the files it references into a
// temporary directory and returns the scene path.
func writeScene(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name string, data []byte) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	write("scene.yaml", []byte(body))
	write("quad.vert", []byte("void main() {}"))
	write("quad.frag", []byte("void main() {}"))

	f, err := os.Create(filepath.Join(dir, "checker.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, f.Close())
	return filepath.Join(dir, "scene.yaml")
}

func TestParseDefaults(t *testing.T) {
	cfg, err := scene.Parse([]byte(`
shader: {vertex: a.vert, fragment: a.frag}
mesh:
  vertices: [0, 0, 1, 0, 0, 1]
  attributes: [{type: float, count: 2}]
`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, [4]float32{0.12, 0.12, 0.14, 1}, cfg.ClearColor)
}

func TestLoadResolvesPaths(t *testing.T) {
	path := writeScene(t, quadScene)
	cfg, err := scene.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "quad.vert"), cfg.Shader.Vertex)
	assert.Equal(t, filepath.Join(dir, "checker.png"), cfg.Textures[0].Path)
	assert.Equal(t, "quad", cfg.Window.Title)
	require.Len(t, cfg.Mesh.Attributes, 2)
	require.NotNil(t, cfg.Mesh.Attributes[1].Slot)
	assert.Equal(t, 2, *cfg.Mesh.Attributes[1].Slot)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
		msg  string
	}{
		{
			name: "missing shader",
			body: `mesh: {vertices: [0, 0], attributes: [{type: float, count: 2}]}`,
			msg:  "missing vertex path",
		},
		{
			name: "unknown type",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0], attributes: [{type: vec2, count: 2}]}`,
			is: render.ErrUnknownScalarType,
		},
		{
			name: "count too large",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0, 0, 0, 0], attributes: [{type: float, count: 5}]}`,
			msg: "count 5 out of range",
		},
		{
			name: "slot past capacity",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0], attributes: [{type: float, count: 2, slot: 16}]}`,
			is: render.ErrCapacityExceeded,
		},
		{
			name: "partial vertex",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0, 0], attributes: [{type: float, count: 2}]}`,
			msg: "not a multiple of the 8 byte stride",
		},
		{
			name: "index out of range",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0, 1, 1], indices: [0, 2], attributes: [{type: float, count: 2}]}`,
			msg: "out of range for 2 vertices",
		},
		{
			name: "bad texture",
			body: `
shader: {vertex: a, fragment: b}
textures: [{path: t.png, unit: 16}]
mesh: {vertices: [0, 0], attributes: [{type: float, count: 2}]}`,
			msg: "unit 16 out of range",
		},
		{
			name: "bad draw mode",
			body: `
shader: {vertex: a, fragment: b}
mesh: {vertices: [0, 0], draw_mode: quads, attributes: [{type: float, count: 2}]}`,
			msg: "unknown draw mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scene.Parse([]byte(tt.body))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	cfg, err := scene.Load(writeScene(t, quadScene))
	require.NoError(t, err)

	dev := rendertest.NewDevice()
	s, err := scene.Build(dev, cfg)
	require.NoError(t, err)

	assert.Equal(t, 20, s.Plan.Stride)
	require.Len(t, s.Plan.Attributes, 2)
	assert.Equal(t, 2, s.Plan.Attributes[1].Slot)
	assert.Equal(t, 8, s.Plan.Attributes[1].Offset)
	assert.Equal(t, int32(6), s.Count())

	require.Len(t, s.Textures, 1)
	assert.Equal(t, "checker", s.Textures[0].UniformName())
	assert.Equal(t, uint32(1), s.Textures[0].Unit())

	dev.Reset()
	s.Draw()
	assert.Equal(t, int32(1), dev.Uniforms[dev.Location("checker")])
	assert.Equal(t, []any{render.Triangles, int32(6), render.UnsignedInt, uintptr(0)},
		dev.CallsTo("DrawElements")[0].Args)

	s.Delete()
	assert.Len(t, dev.CallsTo("DeleteBuffer"), 2)
	assert.Len(t, dev.CallsTo("DeleteTexture"), 1)
	assert.Len(t, dev.CallsTo("DeleteProgram"), 1)
}

func TestBuildUnindexed(t *testing.T) {
	cfg, err := scene.Load(writeScene(t, `
shader: {vertex: quad.vert, fragment: quad.frag}
mesh:
  draw_mode: triangle_strip
  vertices: [0, 0, 1, 0, 0, 1, 1, 1]
  attributes: [{type: float, count: 2}]
`))
	require.NoError(t, err)

	dev := rendertest.NewDevice()
	s, err := scene.Build(dev, cfg)
	require.NoError(t, err)
	assert.Nil(t, s.Object.IndexBuffer())
	assert.Equal(t, int32(4), s.Count())

	s.Draw()
	assert.Equal(t, []any{render.TriangleStrip, int32(0), int32(4)}, dev.CallsTo("DrawArrays")[0].Args)
}

func TestBuildReleasesOnFailure(t *testing.T) {
	path := writeScene(t, quadScene)
	cfg, err := scene.Load(path)
	require.NoError(t, err)
	cfg.Textures[0].Path = filepath.Join(filepath.Dir(path), "missing.png")

	dev := rendertest.NewDevice()
	_, err = scene.Build(dev, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, dev.CallsTo("DeleteProgram"), 1)
	assert.Len(t, dev.CallsTo("DeleteTexture"), 1)
}
