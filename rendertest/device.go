// Package rendertest provides a recording render.Device for tests.
package rendertest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-theft-auto/render"
)

// Call is one recorded driver call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Op + "(" + strings.Join(parts, ", ") + ")"
}

// Image is the last TexImage2D upload of a texture.
type Image struct {
	InternalFormat render.PixelFormat
	Format         render.PixelFormat
	Width, Height  int
	Pixels         []byte
}

// Device records every call and keeps enough state (bindings, buffer
// contents, uniform values) for tests to inspect results.
type Device struct {
	// MaxAttribs is returned by MaxVertexAttribs.
	MaxAttribs int
	// ProgramErr, if set, is returned by CreateProgram.
	ProgramErr error
	// MissingUniforms lists uniform names that resolve to location -1.
	MissingUniforms map[string]bool

	Calls []Call

	// Buffers holds the bytes of every buffer object.
	Buffers map[uint32][]byte
	// Textures holds the last upload of every texture object.
	Textures map[uint32]Image
	// Uniforms holds the last value written to each uniform location.
	Uniforms map[int32]any

	nextID       uint32
	bound        map[render.BufferTarget]uint32
	boundTexture uint32
	locations    map[string]int32
}

// NewDevice returns a device reporting 16 attribute slots.
func NewDevice() *Device {
	return &Device{
		MaxAttribs:      render.DefaultMaxVertexAttribs,
		MissingUniforms: make(map[string]bool),
		Buffers:         make(map[uint32][]byte),
		Textures:        make(map[uint32]Image),
		Uniforms:        make(map[int32]any),
		bound:           make(map[render.BufferTarget]uint32),
		locations:       make(map[string]int32),
	}
}

var _ render.Device = (*Device)(nil)

// Reset forgets the recorded calls but keeps all object state.
func (d *Device) Reset() {
	d.Calls = nil
}

// Ops returns the op names of the recorded calls in order.
func (d *Device) Ops() []string {
	ops := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// CallsTo returns the recorded calls with the given op name.
func (d *Device) CallsTo(op string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Bound returns the buffer bound to target.
func (d *Device) Bound(target render.BufferTarget) uint32 {
	return d.bound[target]
}

// Location returns the location UniformLocation reports for name. Locations
// are handed out in first-use order and are shared by all programs.
func (d *Device) Location(name string) int32 {
	if d.MissingUniforms[name] {
		return -1
	}
	loc, ok := d.locations[name]
	if !ok {
		loc = int32(len(d.locations))
		d.locations[name] = loc
	}
	return loc
}

func (d *Device) record(op string, args ...any) {
	d.Calls = append(d.Calls, Call{Op: op, Args: args})
}

func (d *Device) gen() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) MaxVertexAttribs() int {
	d.record("MaxVertexAttribs")
	return d.MaxAttribs
}

func (d *Device) VertexAttribPointer(slot uint32, count int32, typ render.ScalarType, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", slot, count, typ, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	d.record("EnableVertexAttribArray", slot)
}

func (d *Device) GenVertexArray() uint32 {
	id := d.gen()
	d.record("GenVertexArray", id)
	return id
}

func (d *Device) BindVertexArray(id uint32) {
	d.record("BindVertexArray", id)
}

func (d *Device) DeleteVertexArray(id uint32) {
	d.record("DeleteVertexArray", id)
}

func (d *Device) GenBuffer() uint32 {
	id := d.gen()
	d.record("GenBuffer", id)
	return id
}

func (d *Device) BindBuffer(target render.BufferTarget, id uint32) {
	d.record("BindBuffer", target, id)
	d.bound[target] = id
}

func (d *Device) BufferData(target render.BufferTarget, size int, data unsafe.Pointer, usage render.Usage) {
	d.record("BufferData", target, size, usage)
	buf := make([]byte, size)
	if data != nil && size > 0 {
		copy(buf, unsafe.Slice((*byte)(data), size))
	}
	d.Buffers[d.bound[target]] = buf
}

func (d *Device) BufferSubData(target render.BufferTarget, offset, size int, data unsafe.Pointer) {
	d.record("BufferSubData", target, offset, size)
	buf := d.Buffers[d.bound[target]]
	if data == nil || offset+size > len(buf) {
		return
	}
	copy(buf[offset:], unsafe.Slice((*byte)(data), size))
}

func (d *Device) DeleteBuffer(id uint32) {
	d.record("DeleteBuffer", id)
	delete(d.Buffers, id)
}

func (d *Device) CreateProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.ProgramErr != nil {
		d.record("CreateProgram", 0)
		return 0, d.ProgramErr
	}
	id := d.gen()
	d.record("CreateProgram", id)
	return id, nil
}

func (d *Device) UseProgram(id uint32) {
	d.record("UseProgram", id)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	loc := d.Location(name)
	d.record("UniformLocation", program, name)
	return loc
}

func (d *Device) Uniform1i(loc int32, v int32) {
	d.record("Uniform1i", loc, v)
	d.Uniforms[loc] = v
}

func (d *Device) Uniform1f(loc int32, v float32) {
	d.record("Uniform1f", loc, v)
	d.Uniforms[loc] = v
}

func (d *Device) Uniform3f(loc int32, x, y, z float32) {
	d.record("Uniform3f", loc, x, y, z)
	d.Uniforms[loc] = [3]float32{x, y, z}
}

func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	d.record("UniformMatrix4fv", loc)
	d.Uniforms[loc] = *m
}

func (d *Device) DeleteProgram(id uint32) {
	d.record("DeleteProgram", id)
}

func (d *Device) GenTexture() uint32 {
	id := d.gen()
	d.record("GenTexture", id)
	return id
}

func (d *Device) ActiveTexture(unit uint32) {
	d.record("ActiveTexture", unit)
}

func (d *Device) BindTexture(target render.TextureTarget, id uint32) {
	d.record("BindTexture", target, id)
	d.boundTexture = id
}

func (d *Device) TexParameter(target render.TextureTarget, param render.TextureParam, value uint32) {
	d.record("TexParameter", target, param, value)
}

func (d *Device) TexImage2D(target render.TextureTarget, internalFormat render.PixelFormat, width, height int, format render.PixelFormat, pixels []byte) {
	d.record("TexImage2D", target, internalFormat, width, height, format, len(pixels))
	d.Textures[d.boundTexture] = Image{
		InternalFormat: internalFormat,
		Format:         format,
		Width:          width,
		Height:         height,
		Pixels:         append([]byte(nil), pixels...),
	}
}

func (d *Device) GenerateMipmap(target render.TextureTarget) {
	d.record("GenerateMipmap", target)
}

func (d *Device) DeleteTexture(id uint32) {
	d.record("DeleteTexture", id)
	delete(d.Textures, id)
}

func (d *Device) DrawArrays(mode render.DrawMode, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) DrawElements(mode render.DrawMode, count int32, indexType render.ScalarType, offset uintptr) {
	d.record("DrawElements", mode, count, indexType, offset)
}
