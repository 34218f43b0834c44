package render

import (
	"fmt"
	"strings"
)

// ScalarType is the element type of one vertex attribute component.
type ScalarType uint32

const (
	Float         ScalarType = iota + 1 // 32-bit float
	Int                                 // 32-bit signed integer
	UnsignedInt                         // 32-bit unsigned integer
	Bool                                // driver boolean (one byte)
	Byte                                // 8-bit signed integer
	UnsignedByte                        // 8-bit unsigned integer, usually normalized colors
	Short                               // 16-bit signed integer
	UnsignedShort                       // 16-bit unsigned integer
	HalfFloat                           // 16-bit float
	Double                              // 64-bit float
)

// scalarSizes gives the byte width of each recognized scalar type.
var scalarSizes = map[ScalarType]int{
	Float:         4,
	Int:           4,
	UnsignedInt:   4,
	Bool:          1,
	Byte:          1,
	UnsignedByte:  1,
	Short:         2,
	UnsignedShort: 2,
	HalfFloat:     2,
	Double:        8,
}

var scalarNames = map[ScalarType]string{
	Float:         "float",
	Int:           "int",
	UnsignedInt:   "uint",
	Bool:          "bool",
	Byte:          "byte",
	UnsignedByte:  "ubyte",
	Short:         "short",
	UnsignedShort: "ushort",
	HalfFloat:     "half",
	Double:        "double",
}

// DefaultScalarSize is the width assumed for scalar types with no known size.
const DefaultScalarSize = 4

// Size returns the byte width of the type and whether the type is recognized.
func (t ScalarType) Size() (int, bool) {
	n, ok := scalarSizes[t]
	return n, ok
}

// Valid reports whether t is a recognized scalar type.
func (t ScalarType) Valid() bool {
	_, ok := scalarSizes[t]
	return ok
}

func (t ScalarType) String() string {
	if name, ok := scalarNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ScalarType(%d)", uint32(t))
}

// ParseScalarType maps a name such as "float" or "uint" to its ScalarType.
// A few GLSL-ish aliases are accepted as well.
func ParseScalarType(name string) (ScalarType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float", "float32":
		return Float, nil
	case "int", "int32":
		return Int, nil
	case "uint", "uint32", "unsigned_int":
		return UnsignedInt, nil
	case "bool":
		return Bool, nil
	case "byte", "int8":
		return Byte, nil
	case "ubyte", "uint8", "unsigned_byte":
		return UnsignedByte, nil
	case "short", "int16":
		return Short, nil
	case "ushort", "uint16", "unsigned_short":
		return UnsignedShort, nil
	case "half", "float16":
		return HalfFloat, nil
	case "double", "float64":
		return Double, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScalarType, name)
}

// BufferTarget is the binding point a buffer object is attached to.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = iota + 1 // vertex data
	ElementArrayBuffer                         // index data
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element_array"
	}
	return fmt.Sprintf("BufferTarget(%d)", uint32(t))
}

// Usage is the access-pattern hint passed along with buffer data.
type Usage uint32

const (
	StaticDraw  Usage = iota + 1 // set once, drawn many times
	DynamicDraw                  // changed often, drawn many times
	StreamDraw                   // set once, drawn a few times
	StaticRead
	DynamicRead
	StreamRead
	StaticCopy
	DynamicCopy
	StreamCopy
)

// DrawMode is the primitive topology used by draw calls.
type DrawMode uint32

const (
	Points DrawMode = iota + 1
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// ParseDrawMode maps names like "triangles" or "line_strip" to a DrawMode.
func ParseDrawMode(name string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "points":
		return Points, nil
	case "lines":
		return Lines, nil
	case "line_strip":
		return LineStrip, nil
	case "line_loop":
		return LineLoop, nil
	case "", "triangles":
		return Triangles, nil
	case "triangle_strip":
		return TriangleStrip, nil
	case "triangle_fan":
		return TriangleFan, nil
	}
	return 0, fmt.Errorf("unknown draw mode %q", name)
}

// TextureTarget is the binding point of a texture object.
type TextureTarget uint32

const (
	Texture2D TextureTarget = iota + 1
	TextureCubeMap
)

// TextureParam names a texture parameter that can be changed with SetParam.
type TextureParam uint32

const (
	TextureWrapS TextureParam = iota + 1
	TextureWrapT
	TextureMinFilter
	TextureMagFilter
)

func (p TextureParam) String() string {
	switch p {
	case TextureWrapS:
		return "wrap_s"
	case TextureWrapT:
		return "wrap_t"
	case TextureMinFilter:
		return "min_filter"
	case TextureMagFilter:
		return "mag_filter"
	}
	return fmt.Sprintf("TextureParam(%d)", uint32(p))
}

// TextureWrap is the value of a wrap parameter.
type TextureWrap uint32

const (
	Repeat TextureWrap = iota + 1
	MirroredRepeat
	ClampToEdge
	ClampToBorder
)

// ParseTextureWrap maps names like "repeat" or "clamp_to_edge" to a TextureWrap.
func ParseTextureWrap(name string) (TextureWrap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "repeat":
		return Repeat, nil
	case "", "mirrored_repeat":
		return MirroredRepeat, nil
	case "clamp_to_edge":
		return ClampToEdge, nil
	case "clamp_to_border":
		return ClampToBorder, nil
	}
	return 0, fmt.Errorf("unknown texture wrap %q", name)
}

// TextureFilter is the value of a min/mag filter parameter.
type TextureFilter uint32

const (
	Nearest TextureFilter = iota + 1
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

// ParseTextureFilter maps names like "nearest" or "linear_mipmap_linear" to a TextureFilter.
func ParseTextureFilter(name string) (TextureFilter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	case "nearest_mipmap_nearest":
		return NearestMipmapNearest, nil
	case "linear_mipmap_nearest":
		return LinearMipmapNearest, nil
	case "nearest_mipmap_linear":
		return NearestMipmapLinear, nil
	case "linear_mipmap_linear":
		return LinearMipmapLinear, nil
	}
	return 0, fmt.Errorf("unknown texture filter %q", name)
}

// PixelFormat describes the channel layout of texture storage or pixel data.
type PixelFormat uint32

const (
	Red  PixelFormat = iota + 1 // single channel
	RG                          // two channels
	RGB                         // three channels
	RGBA                        // four channels
)

// Channels returns the number of 8-bit channels per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case Red:
		return 1
	case RG:
		return 2
	case RGB:
		return 3
	}
	return 4
}
