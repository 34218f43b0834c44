package render

import (
	"fmt"
	"image"
)

// MaxTextureUnits is the number of texture units a Texture may bind to.
const MaxTextureUnits = 16

// Texture is a texture object plus the sampling state and the image
// settings applied when pixels are uploaded.
type Texture struct {
	dev TextureDriver
	id  uint32

	target         TextureTarget
	wrapS, wrapT   TextureWrap
	minFilter      TextureFilter
	magFilter      TextureFilter
	internalFormat PixelFormat
	format         PixelFormat
	unit           uint32
	uniform        string
	flipH, flipV   bool
	mipmaps        bool

	width, height int
}

// TextureOption configures a Texture.
type TextureOption func(*Texture)

// WithTextureTarget sets the binding target. Default is Texture2D.
func WithTextureTarget(target TextureTarget) TextureOption {
	return func(t *Texture) { t.target = target }
}

// WithWrap sets the S and T wrap modes. Default is MirroredRepeat.
func WithWrap(s, t TextureWrap) TextureOption {
	return func(tex *Texture) { tex.wrapS, tex.wrapT = s, t }
}

// WithFilter sets the minification and magnification filters. Default is Nearest.
func WithFilter(minFilter, magFilter TextureFilter) TextureOption {
	return func(t *Texture) { t.minFilter, t.magFilter = minFilter, magFilter }
}

// WithFormat sets the storage format and the format of uploaded pixels.
// Default is RGBA for both.
func WithFormat(internal, format PixelFormat) TextureOption {
	return func(t *Texture) { t.internalFormat, t.format = internal, format }
}

// WithUnit sets the texture unit Bind activates.
func WithUnit(unit uint32) TextureOption {
	return func(t *Texture) { t.unit = unit }
}

// WithUniformName sets the sampler uniform ApplyUniform writes.
func WithUniformName(name string) TextureOption {
	return func(t *Texture) { t.uniform = name }
}

// WithFlipH mirrors images left to right on upload.
func WithFlipH() TextureOption {
	return func(t *Texture) { t.flipH = true }
}

// WithFlipV mirrors images top to bottom on upload. Most image files
// store the top row first while texture coordinates start at the bottom.
func WithFlipV() TextureOption {
	return func(t *Texture) { t.flipV = true }
}

// WithMipmaps generates mipmaps after every upload.
func WithMipmaps() TextureOption {
	return func(t *Texture) { t.mipmaps = true }
}

// NewTexture generates a texture object.
func NewTexture(dev TextureDriver, opts ...TextureOption) *Texture {
	t := &Texture{
		dev:            dev,
		target:         Texture2D,
		wrapS:          MirroredRepeat,
		wrapT:          MirroredRepeat,
		minFilter:      Nearest,
		magFilter:      Nearest,
		internalFormat: RGBA,
		format:         RGBA,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.id = dev.GenTexture()
	return t
}

// ID returns the driver handle, or 0 after Delete.
func (t *Texture) ID() uint32 { return t.id }

// Unit returns the texture unit.
func (t *Texture) Unit() uint32 { return t.unit }

// SetUnit changes the texture unit used by later Bind calls.
func (t *Texture) SetUnit(unit uint32) { t.unit = unit }

// UniformName returns the sampler uniform name.
func (t *Texture) UniformName() string { return t.uniform }

// SetUniformName changes the sampler uniform name.
func (t *Texture) SetUniformName(name string) { t.uniform = name }

// Size returns the dimensions of the last upload.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// SetParam changes a wrap or filter parameter. value is a TextureWrap for
// wrap parameters and a TextureFilter for filter parameters. The change
// takes effect on the next upload. Unknown parameters are logged and ignored.
func (t *Texture) SetParam(param TextureParam, value uint32) {
	switch param {
	case TextureWrapS:
		t.wrapS = TextureWrap(value)
	case TextureWrapT:
		t.wrapT = TextureWrap(value)
	case TextureMinFilter:
		t.minFilter = TextureFilter(value)
	case TextureMagFilter:
		t.magFilter = TextureFilter(value)
	default:
		Logger().Warn("unknown texture parameter ignored",
			"texture", t.id, "uniform", t.uniform, "param", param)
	}
}

// Upload binds the texture, applies the sampling parameters and uploads img
// with the configured flips and format.
func (t *Texture) Upload(img image.Image) error {
	if img == nil {
		return fmt.Errorf("texture %d: nil image", t.id)
	}
	rgba := toRGBA(img, t.flipH, t.flipV)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return fmt.Errorf("texture %d: empty image", t.id)
	}

	t.dev.BindTexture(t.target, t.id)
	t.dev.TexParameter(t.target, TextureWrapS, uint32(t.wrapS))
	t.dev.TexParameter(t.target, TextureWrapT, uint32(t.wrapT))
	t.dev.TexParameter(t.target, TextureMinFilter, uint32(t.minFilter))
	t.dev.TexParameter(t.target, TextureMagFilter, uint32(t.magFilter))
	t.dev.TexImage2D(t.target, t.internalFormat, w, h, t.format, pixelData(rgba, t.format))
	if t.mipmaps {
		t.dev.GenerateMipmap(t.target)
	}

	t.width, t.height = w, h
	Logger().Info("texture uploaded", "texture", t.id, "width", w, "height", h)
	return nil
}

// LoadFile decodes the image at path and uploads it. If no uniform name
// was set the path is used.
func (t *Texture) LoadFile(path string) error {
	img, err := OpenImage(path)
	if err != nil {
		return fmt.Errorf("load texture: %w", err)
	}
	if t.uniform == "" {
		t.uniform = path
	}
	return t.Upload(img)
}

// GenerateMipmap builds mipmaps for the current image.
func (t *Texture) GenerateMipmap() {
	t.dev.BindTexture(t.target, t.id)
	t.dev.GenerateMipmap(t.target)
}

// Bind activates the texture's unit and binds the texture to it. Units
// past the last one are logged and the last unit is used.
func (t *Texture) Bind() {
	unit := t.unit
	if unit >= MaxTextureUnits {
		Logger().Warn("invalid texture unit, using last unit",
			"texture", t.id, "uniform", t.uniform, "unit", unit, "using", MaxTextureUnits-1)
		unit = MaxTextureUnits - 1
	}
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(t.target, t.id)
}

// ApplyUniform points the texture's sampler uniform in s at its unit.
func (t *Texture) ApplyUniform(s *Shader) {
	s.SetInt(t.uniform, int32(min(t.unit, MaxTextureUnits-1)))
}

// Delete releases the texture object. Further calls are no-ops.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	t.dev.DeleteTexture(t.id)
	t.id = 0
}
