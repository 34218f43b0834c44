package render

import "unsafe"

// AttribDriver is the part of the driver the layout planner talks to.
// Attribute pointers are recorded against the currently bound vertex array
// and array buffer; callers bind both before compiling.
type AttribDriver interface {
	// MaxVertexAttribs returns the number of attribute slots the context supports.
	MaxVertexAttribs() int
	VertexAttribPointer(slot uint32, count int32, typ ScalarType, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(slot uint32)
}

// VertexArrayDriver creates and binds vertex array objects.
type VertexArrayDriver interface {
	AttribDriver
	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)
}

// BufferDriver manages buffer objects. Every data call names its target
// explicitly; the buffer to act on must be bound to that target.
type BufferDriver interface {
	GenBuffer() uint32
	BindBuffer(target BufferTarget, id uint32)
	BufferData(target BufferTarget, size int, data unsafe.Pointer, usage Usage)
	BufferSubData(target BufferTarget, offset, size int, data unsafe.Pointer)
	DeleteBuffer(id uint32)
}

// ShaderDriver compiles programs and sets uniforms on the program in use.
type ShaderDriver interface {
	// CreateProgram compiles both stages and links them. Failures wrap
	// ErrShaderCompile or ErrProgramLink.
	CreateProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(id uint32)
	// UniformLocation returns -1 when the program has no active uniform of that name.
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform3f(loc int32, x, y, z float32)
	UniformMatrix4fv(loc int32, m *[16]float32)
	DeleteProgram(id uint32)
}

// TextureDriver manages texture objects and texture units.
type TextureDriver interface {
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target TextureTarget, id uint32)
	// TexParameter sets a wrap parameter to a TextureWrap value or a
	// filter parameter to a TextureFilter value.
	TexParameter(target TextureTarget, param TextureParam, value uint32)
	TexImage2D(target TextureTarget, internalFormat PixelFormat, width, height int, format PixelFormat, pixels []byte)
	GenerateMipmap(target TextureTarget)
	DeleteTexture(id uint32)
}

// DrawDriver issues draw calls against the bound vertex array.
type DrawDriver interface {
	DrawArrays(mode DrawMode, first, count int32)
	DrawElements(mode DrawMode, count int32, indexType ScalarType, offset uintptr)
}

// Device is a complete graphics context as used by Object and friends.
// backend/opengl provides the OpenGL implementation; rendertest provides
// a recording one for tests.
type Device interface {
	VertexArrayDriver
	BufferDriver
	ShaderDriver
	TextureDriver
	DrawDriver
}
