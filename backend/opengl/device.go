// Package opengl provides the OpenGL 4.1 core device and a GLFW window for
// the render package.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/render"
)

// Device issues render driver calls to the current OpenGL context. All
// methods must be called on the thread that owns the context, after
// gl.Init.
type Device struct {
	maxAttribs int // cached GL_MAX_VERTEX_ATTRIBS
}

// NewDevice returns a device for the current context.
func NewDevice() *Device {
	return &Device{}
}

var _ render.Device = (*Device)(nil)

// MaxVertexAttribs returns GL_MAX_VERTEX_ATTRIBS.
func (d *Device) MaxVertexAttribs() int {
	if d.maxAttribs == 0 {
		var n int32
		gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &n)
		d.maxAttribs = int(n)
	}
	return d.maxAttribs
}

// VertexAttribPointer configures slot. Integer types that are not
// normalized go through glVertexAttribIPointer so int, uint and bool shader
// inputs receive integers; everything else is converted to float.
func (d *Device) VertexAttribPointer(slot uint32, count int32, typ render.ScalarType, normalized bool, stride int32, offset uintptr) {
	if integerType(typ) && !normalized {
		gl.VertexAttribIPointerWithOffset(slot, count, attribType(typ), stride, offset)
		return
	}
	gl.VertexAttribPointerWithOffset(slot, count, attribType(typ), normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (d *Device) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) BindBuffer(target render.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTarget(target), id)
}

func (d *Device) BufferData(target render.BufferTarget, size int, data unsafe.Pointer, u render.Usage) {
	gl.BufferData(bufferTarget(target), size, data, usage(u))
}

func (d *Device) BufferSubData(target render.BufferTarget, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(bufferTarget(target), offset, size, data)
}

func (d *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

// CreateProgram compiles both stages and links them. Compile failures wrap
// render.ErrShaderCompile and link failures wrap render.ErrProgramLink,
// with the driver's info log in the message.
func (d *Device) CreateProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", render.ErrProgramLink, trimLog(log))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", render.ErrShaderCompile, trimLog(log))
	}
	return shader, nil
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}

func (d *Device) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (d *Device) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (d *Device) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Device) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (d *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *Device) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (d *Device) BindTexture(target render.TextureTarget, id uint32) {
	gl.BindTexture(textureTarget(target), id)
}

func (d *Device) TexParameter(target render.TextureTarget, param render.TextureParam, value uint32) {
	pname, ok := textureParam(param)
	if !ok {
		render.Logger().Warn("unknown texture parameter ignored", "param", param)
		return
	}
	gl.TexParameteri(textureTarget(target), pname, paramValue(param, value))
}

// TexImage2D uploads tightly packed 8-bit pixel rows.
func (d *Device) TexImage2D(target render.TextureTarget, internalFormat render.PixelFormat, width, height int, format render.PixelFormat, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(textureTarget(target), 0, int32(pixelFormat(internalFormat)),
		int32(width), int32(height), 0, pixelFormat(format), gl.UNSIGNED_BYTE, ptr)
}

func (d *Device) GenerateMipmap(target render.TextureTarget) {
	gl.GenerateMipmap(textureTarget(target))
}

func (d *Device) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (d *Device) DrawArrays(mode render.DrawMode, first, count int32) {
	gl.DrawArrays(drawMode(mode), first, count)
}

func (d *Device) DrawElements(mode render.DrawMode, count int32, indexType render.ScalarType, offset uintptr) {
	gl.DrawElementsWithOffset(drawMode(mode), count, scalarType(indexType), offset)
}

// SetWireframe switches between line and fill polygon rasterization.
func (d *Device) SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Viewport sets the viewport to the given framebuffer size.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to c.
func (d *Device) Clear(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Version returns the GL_VERSION string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
