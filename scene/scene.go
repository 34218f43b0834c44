package scene

import (
	"fmt"

	"github.com/go-theft-auto/render"
)

// Scene is the set of render objects built from a Config.
type Scene struct {
	Shader     *render.Shader
	Material   *render.Material
	Textures   []*render.Texture
	Object     *render.Object
	Plan       render.Plan
	ClearColor [4]float32

	count int32 // indices, or vertices for unindexed meshes
}

// Build creates the shader, textures and object described by cfg, uploads
// the mesh and compiles its layout. Everything created so far is released
// if a step fails.
func Build(dev render.Device, cfg *Config) (_ *Scene, err error) {
	s := &Scene{ClearColor: cfg.ClearColor}
	defer func() {
		if err != nil {
			s.Delete()
		}
	}()

	s.Shader, err = render.LoadShader(dev, cfg.Shader.Vertex, cfg.Shader.Fragment)
	if err != nil {
		return nil, err
	}
	s.Material = render.NewMaterial(s.Shader)

	for i, tc := range cfg.Textures {
		tex, err := buildTexture(dev, tc)
		if tex != nil {
			s.Textures = append(s.Textures, tex)
		}
		if err != nil {
			return nil, fmt.Errorf("textures[%d]: %w", i, err)
		}
		s.Material.PushTexture(tex, tex.UniformName())
	}

	if err := s.buildObject(dev, cfg.Mesh); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	render.Logger().Info("scene built",
		"textures", len(s.Textures), "stride", s.Plan.Stride,
		"attributes", len(s.Plan.Attributes), "count", s.count)
	return s, nil
}

func buildTexture(dev render.Device, tc TextureConfig) (*render.Texture, error) {
	wrap, err := render.ParseTextureWrap(tc.Wrap)
	if err != nil {
		return nil, err
	}
	filter, err := render.ParseTextureFilter(tc.Filter)
	if err != nil {
		return nil, err
	}
	opts := []render.TextureOption{
		render.WithUnit(tc.Unit),
		render.WithWrap(wrap, wrap),
		render.WithFilter(filter, filter),
		render.WithUniformName(tc.Uniform),
	}
	if tc.FlipH {
		opts = append(opts, render.WithFlipH())
	}
	if tc.FlipV {
		opts = append(opts, render.WithFlipV())
	}
	if tc.Mipmaps {
		opts = append(opts, render.WithMipmaps())
	}
	tex := render.NewTexture(dev, opts...)
	if err := tex.LoadFile(tc.Path); err != nil {
		return tex, err
	}
	return tex, nil
}

func (s *Scene) buildObject(dev render.Device, m MeshConfig) error {
	mode, err := render.ParseDrawMode(m.DrawMode)
	if err != nil {
		return err
	}
	opts := []render.ObjectOption{render.WithDrawMode(mode)}
	if len(m.Indices) > 0 {
		opts = append(opts, render.WithIndexBuffer())
	}
	s.Object = render.NewObject(dev, opts...)

	if err := m.applyLayout(s.Object.Layout()); err != nil {
		return err
	}
	render.UploadVertices(s.Object, m.Vertices, render.StaticDraw)
	if len(m.Indices) > 0 {
		if err := render.UploadIndices(s.Object, m.Indices, render.StaticDraw); err != nil {
			return err
		}
	}
	s.Plan = s.Object.CompileLayout()

	if len(m.Indices) > 0 {
		s.count = int32(len(m.Indices))
	} else if s.Plan.Stride > 0 {
		s.count = int32(len(m.Vertices) * 4 / s.Plan.Stride)
	}
	return nil
}

// Count returns the number of indices (or vertices) Draw submits.
func (s *Scene) Count() int32 { return s.count }

// Draw binds the material and draws the whole mesh.
func (s *Scene) Draw() {
	s.Material.Bind()
	s.Object.Draw(s.count)
}

// Delete releases every object in the scene.
func (s *Scene) Delete() {
	if s.Object != nil {
		s.Object.Delete()
	}
	for _, t := range s.Textures {
		t.Delete()
	}
	if s.Shader != nil {
		s.Shader.Delete()
	}
}
