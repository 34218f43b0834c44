package render

import "unsafe"

// Buffer is a buffer object attached to one binding target.
type Buffer struct {
	dev    BufferDriver
	id     uint32
	target BufferTarget
	size   int // bytes allocated by the last SetData
	usage  Usage
}

// NewBuffer generates a buffer object for target. Nothing is allocated
// until SetData is called.
func NewBuffer(dev BufferDriver, target BufferTarget) *Buffer {
	return &Buffer{
		dev:    dev,
		id:     dev.GenBuffer(),
		target: target,
	}
}

// NewVertexBuffer generates an array buffer.
func NewVertexBuffer(dev BufferDriver) *Buffer {
	return NewBuffer(dev, ArrayBuffer)
}

// NewElementBuffer generates an element array buffer. Bind a vertex array
// before binding the result so the array records it.
func NewElementBuffer(dev BufferDriver) *Buffer {
	return NewBuffer(dev, ElementArrayBuffer)
}

// ID returns the driver handle, or 0 after Delete.
func (b *Buffer) ID() uint32 { return b.id }

// Target returns the binding target.
func (b *Buffer) Target() BufferTarget { return b.target }

// Size returns the number of bytes allocated on the driver.
func (b *Buffer) Size() int { return b.size }

// Usage returns the usage hint of the current allocation.
func (b *Buffer) Usage() Usage { return b.usage }

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	b.dev.BindBuffer(b.target, b.id)
}

// Unbind clears the buffer's target.
func (b *Buffer) Unbind() {
	b.dev.BindBuffer(b.target, 0)
}

// SetData binds the buffer and (re)allocates it with size bytes copied from
// data. A nil data pointer allocates without initializing.
func (b *Buffer) SetData(size int, data unsafe.Pointer, usage Usage) {
	b.Bind()
	b.dev.BufferData(b.target, size, data, usage)
	b.size = size
	b.usage = usage
}

// SetSubData binds the buffer and overwrites size bytes at offset. Writes
// past the allocation are logged and dropped.
func (b *Buffer) SetSubData(offset, size int, data unsafe.Pointer) {
	if offset < 0 || offset+size > b.size {
		Logger().Warn("buffer sub-data out of bounds, ignored",
			"buffer", b.id, "target", b.target, "offset", offset, "size", size, "allocated", b.size)
		return
	}
	if size == 0 {
		return
	}
	b.Bind()
	b.dev.BufferSubData(b.target, offset, size, data)
}

// Delete releases the buffer object. Further calls are no-ops.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
	b.size = 0
}

// SetSlice uploads data into b, replacing the allocation. An empty slice
// allocates zero bytes.
func SetSlice[T any](b *Buffer, data []T, usage Usage) {
	b.SetData(sliceBytes(data), slicePtr(data), usage)
}

// SetSubSlice overwrites elements of b starting at element index first.
func SetSubSlice[T any](b *Buffer, first int, data []T) {
	var zero T
	b.SetSubData(first*int(unsafe.Sizeof(zero)), sliceBytes(data), slicePtr(data))
}

func sliceBytes[T any](data []T) int {
	var zero T
	return len(data) * int(unsafe.Sizeof(zero))
}

func slicePtr[T any](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
