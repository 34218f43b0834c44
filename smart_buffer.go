package render

import "unsafe"

// SmartBuffer keeps a CPU-side copy of a buffer's contents. Values are
// staged with Push/Pop/Clear and sent to the driver by Write, which grows
// the driver allocation as needed and updates in place otherwise.
//
//	verts := render.NewSmartBuffer[Vertex](dev, render.ArrayBuffer)
//	verts.Push(Vertex{...}, Vertex{...})
//	verts.Write(render.DynamicDraw)
type SmartBuffer[T any] struct {
	buf      *Buffer
	vao      *VertexArray // bound before writing element data
	data     []T
	uploaded int // elements sent by the last Write
}

// NewSmartBuffer creates a buffer object for target with an empty staging slice.
func NewSmartBuffer[T any](dev BufferDriver, target BufferTarget) *SmartBuffer[T] {
	return FromBuffer[T](NewBuffer(dev, target))
}

// FromBuffer wraps an existing buffer. The buffer's current allocation is
// reused by the first Write if it is large enough.
func FromBuffer[T any](b *Buffer) *SmartBuffer[T] {
	return &SmartBuffer[T]{buf: b}
}

// Link makes Write bind vao first, so element data is recorded in it.
func (s *SmartBuffer[T]) Link(vao *VertexArray) {
	s.vao = vao
}

// Buffer returns the underlying buffer.
func (s *SmartBuffer[T]) Buffer() *Buffer { return s.buf }

// Bind binds the underlying buffer.
func (s *SmartBuffer[T]) Bind() { s.buf.Bind() }

// Push appends values to the staging slice.
func (s *SmartBuffer[T]) Push(values ...T) {
	s.data = append(s.data, values...)
}

// Pop removes the last staged value. It does nothing when empty.
func (s *SmartBuffer[T]) Pop() {
	if len(s.data) == 0 {
		return
	}
	s.data = s.data[:len(s.data)-1]
}

// Clear empties the staging slice, keeping its capacity.
func (s *SmartBuffer[T]) Clear() {
	s.data = s.data[:0]
}

// Len returns the number of staged values.
func (s *SmartBuffer[T]) Len() int { return len(s.data) }

// Uploaded returns the number of values sent by the last Write.
func (s *SmartBuffer[T]) Uploaded() int { return s.uploaded }

// Data returns the staging slice. It is only valid until the next Push.
func (s *SmartBuffer[T]) Data() []T { return s.data }

// Write sends the staged values to the driver. The allocation doubles
// when the data no longer fits. A changed usage hint reallocates at the
// current size. Otherwise the existing storage is overwritten in place.
func (s *SmartBuffer[T]) Write(usage Usage) {
	if s.vao != nil {
		s.vao.Bind()
	}
	size := sliceBytes(s.data)
	switch {
	case size > s.buf.Size():
		capacity := max(size, 2*s.buf.Size())
		Logger().Debug("growing buffer",
			"buffer", s.buf.ID(), "target", s.buf.Target(), "from", s.buf.Size(), "to", capacity)
		s.buf.SetData(capacity, nil, usage)
	case usage != s.buf.Usage():
		Logger().Debug("reallocating buffer for new usage",
			"buffer", s.buf.ID(), "target", s.buf.Target(), "from", s.buf.Usage(), "to", usage)
		s.buf.SetData(s.buf.Size(), nil, usage)
	}
	if size > 0 {
		s.buf.SetSubData(0, size, unsafe.Pointer(&s.data[0]))
	}
	s.uploaded = len(s.data)
}

// Delete releases the underlying buffer.
func (s *SmartBuffer[T]) Delete() {
	s.buf.Delete()
}
