package render

// Material is a shader with the textures it samples.
type Material struct {
	shader   *Shader
	textures []materialTexture
}

type materialTexture struct {
	tex     *Texture
	uniform string
	applied bool // sampler uniform already written
}

// NewMaterial returns a material drawing with shader.
func NewMaterial(shader *Shader) *Material {
	return &Material{shader: shader}
}

// Shader returns the material's shader.
func (m *Material) Shader() *Shader { return m.shader }

// Len returns the number of textures.
func (m *Material) Len() int { return len(m.textures) }

// Texture returns the i-th texture.
func (m *Material) Texture(i int) *Texture {
	if i < 0 || i >= len(m.textures) {
		return nil
	}
	return m.textures[i].tex
}

// PushTexture adds a texture sampled through the named uniform.
func (m *Material) PushTexture(tex *Texture, uniform string) {
	m.textures = append(m.textures, materialTexture{tex: tex, uniform: uniform})
}

// PopTexture removes the last texture. It does nothing when there is none.
func (m *Material) PopTexture() {
	if len(m.textures) == 0 {
		return
	}
	m.textures = m.textures[:len(m.textures)-1]
}

// Bind makes the shader current and binds every texture to its unit.
// Sampler uniforms are written the first time each texture is bound.
func (m *Material) Bind() {
	m.shader.Bind()
	for i := range m.textures {
		mt := &m.textures[i]
		mt.tex.Bind()
		if !mt.applied {
			mt.tex.SetUniformName(mt.uniform)
			mt.tex.ApplyUniform(m.shader)
			mt.applied = true
		}
	}
}

// SetBool sets a bool uniform on the shader.
func (m *Material) SetBool(name string, v bool) { m.shader.SetBool(name, v) }

// SetInt sets an int uniform on the shader.
func (m *Material) SetInt(name string, v int32) { m.shader.SetInt(name, v) }

// SetFloat sets a float uniform on the shader.
func (m *Material) SetFloat(name string, v float32) { m.shader.SetFloat(name, v) }

// SetVec3 sets a vec3 uniform on the shader.
func (m *Material) SetVec3(name string, x, y, z float32) { m.shader.SetVec3(name, x, y, z) }

// SetMat4 sets a mat4 uniform on the shader.
func (m *Material) SetMat4(name string, v [16]float32) { m.shader.SetMat4(name, v) }
