package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/render"
)

// scalarType maps a render.ScalarType to its GL enum. Unknown types map to
// GL_UNSIGNED_INT.
func scalarType(t render.ScalarType) uint32 {
	switch t {
	case render.Float:
		return gl.FLOAT
	case render.Int:
		return gl.INT
	case render.UnsignedInt:
		return gl.UNSIGNED_INT
	case render.Bool:
		return gl.BOOL
	case render.Byte:
		return gl.BYTE
	case render.UnsignedByte:
		return gl.UNSIGNED_BYTE
	case render.Short:
		return gl.SHORT
	case render.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case render.HalfFloat:
		return gl.HALF_FLOAT
	case render.Double:
		return gl.DOUBLE
	}
	return gl.UNSIGNED_INT
}

// attribType maps an attribute's scalar type. glVertexAttribPointer does
// not accept GL_BOOL, so one-byte booleans are read as unsigned bytes.
func attribType(t render.ScalarType) uint32 {
	if t == render.Bool {
		return gl.UNSIGNED_BYTE
	}
	return scalarType(t)
}

// integerType reports whether t reaches the shader as an integer when it is
// not normalized.
func integerType(t render.ScalarType) bool {
	switch t {
	case render.Int, render.UnsignedInt, render.Bool,
		render.Byte, render.UnsignedByte, render.Short, render.UnsignedShort:
		return true
	}
	return false
}

func bufferTarget(t render.BufferTarget) uint32 {
	if t == render.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func usage(u render.Usage) uint32 {
	switch u {
	case render.StaticRead:
		return gl.STATIC_READ
	case render.StaticCopy:
		return gl.STATIC_COPY
	case render.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case render.DynamicRead:
		return gl.DYNAMIC_READ
	case render.DynamicCopy:
		return gl.DYNAMIC_COPY
	case render.StreamDraw:
		return gl.STREAM_DRAW
	case render.StreamRead:
		return gl.STREAM_READ
	case render.StreamCopy:
		return gl.STREAM_COPY
	}
	return gl.STATIC_DRAW
}

func drawMode(m render.DrawMode) uint32 {
	switch m {
	case render.Points:
		return gl.POINTS
	case render.Lines:
		return gl.LINES
	case render.LineStrip:
		return gl.LINE_STRIP
	case render.LineLoop:
		return gl.LINE_LOOP
	case render.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case render.TriangleFan:
		return gl.TRIANGLE_FAN
	}
	return gl.TRIANGLES
}

func textureTarget(t render.TextureTarget) uint32 {
	if t == render.TextureCubeMap {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

func textureParam(p render.TextureParam) (uint32, bool) {
	switch p {
	case render.TextureWrapS:
		return gl.TEXTURE_WRAP_S, true
	case render.TextureWrapT:
		return gl.TEXTURE_WRAP_T, true
	case render.TextureMinFilter:
		return gl.TEXTURE_MIN_FILTER, true
	case render.TextureMagFilter:
		return gl.TEXTURE_MAG_FILTER, true
	}
	return 0, false
}

func textureWrap(w render.TextureWrap) int32 {
	switch w {
	case render.Repeat:
		return gl.REPEAT
	case render.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case render.ClampToBorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.MIRRORED_REPEAT
}

func textureFilter(f render.TextureFilter) int32 {
	switch f {
	case render.Linear:
		return gl.LINEAR
	case render.NearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case render.LinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case render.NearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case render.LinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST
}

// paramValue converts a parameter value to the GL enum it names.
func paramValue(p render.TextureParam, value uint32) int32 {
	switch p {
	case render.TextureWrapS, render.TextureWrapT:
		return textureWrap(render.TextureWrap(value))
	}
	return textureFilter(render.TextureFilter(value))
}

func pixelFormat(f render.PixelFormat) uint32 {
	switch f {
	case render.Red:
		return gl.RED
	case render.RG:
		return gl.RG
	case render.RGB:
		return gl.RGB
	}
	return gl.RGBA
}
