package render

import (
	"fmt"
	"unsafe"
)

// LayoutHolder is implemented by render objects that own a vertex layout.
type LayoutHolder interface {
	Layout() *Layout
	// CompileLayout binds the object's vertex array and buffer and writes
	// the layout to the driver.
	CompileLayout() Plan
}

// BufferHolder is implemented by render objects backed by a vertex buffer.
type BufferHolder interface {
	VertexBuffer() *Buffer
}

// Drawable is a render object that can be drawn on its own.
type Drawable interface {
	LayoutHolder
	BufferHolder
	Draw(count int32)
	Delete()
}

var (
	_ Drawable = (*Object)(nil)
	_ Drawable = (*SmartObject[float32])(nil)
)

// Object is a vertex array with its vertex buffer and, optionally, an
// element buffer. Vertex data is uploaded raw and described by the layout.
//
//	obj := render.NewObject(dev, render.WithIndexBuffer())
//	render.UploadVertices(obj, vertices, render.StaticDraw)
//	render.UploadIndices(obj, indices, render.StaticDraw)
//	obj.Layout().Append(render.Float, false, 2)
//	obj.Layout().Append(render.Float, false, 2)
//	obj.CompileLayout()
//	...
//	obj.Draw(6)
type Object struct {
	dev       Device
	vao       *VertexArray
	vbo       *Buffer
	ebo       *Buffer // nil unless WithIndexBuffer
	drawMode  DrawMode
	indexType ScalarType
}

// NewObject generates the vertex array and buffers for an object.
func NewObject(dev Device, opts ...ObjectOption) *Object {
	o := applyObjectOptions(opts)
	obj := &Object{
		dev:       dev,
		vao:       NewVertexArray(dev),
		vbo:       NewVertexBuffer(dev),
		drawMode:  o.drawMode,
		indexType: o.indexType,
	}
	if o.indexed {
		obj.ebo = NewElementBuffer(dev)
		obj.vao.Bind()
		obj.ebo.Bind()
	}
	return obj
}

// VertexArray returns the object's vertex array.
func (o *Object) VertexArray() *VertexArray { return o.vao }

// VertexBuffer returns the vertex buffer.
func (o *Object) VertexBuffer() *Buffer { return o.vbo }

// IndexBuffer returns the element buffer, or nil.
func (o *Object) IndexBuffer() *Buffer { return o.ebo }

// Layout returns the vertex layout.
func (o *Object) Layout() *Layout { return o.vao.Layout() }

// DrawMode returns the primitive topology.
func (o *Object) DrawMode() DrawMode { return o.drawMode }

// SetDrawMode changes the primitive topology.
func (o *Object) SetDrawMode(mode DrawMode) { o.drawMode = mode }

// IndexType returns the type of index data.
func (o *Object) IndexType() ScalarType { return o.indexType }

// SetIndexType changes the type of index data.
func (o *Object) SetIndexType(t ScalarType) { o.indexType = t }

// SetVertexData uploads size bytes of vertex data.
func (o *Object) SetVertexData(size int, data unsafe.Pointer, usage Usage) {
	o.vao.Bind()
	o.vbo.SetData(size, data, usage)
}

// SetIndexData uploads size bytes of index data.
func (o *Object) SetIndexData(size int, data unsafe.Pointer, usage Usage) error {
	if o.ebo == nil {
		return ErrNoIndexBuffer
	}
	o.vao.Bind()
	o.ebo.SetData(size, data, usage)
	return nil
}

// CompileLayout writes the layout for the object's vertex buffer.
func (o *Object) CompileLayout() Plan {
	return o.vao.Compile(o.vbo)
}

// Draw draws count elements, indexed if the object has an element buffer.
func (o *Object) Draw(count int32) {
	if o.ebo != nil {
		o.DrawElements(o.drawMode, count, o.indexType)
		return
	}
	o.DrawArrays(o.drawMode, count)
}

// DrawElements draws count indices from the start of the element buffer.
func (o *Object) DrawElements(mode DrawMode, count int32, indexType ScalarType) {
	o.vao.Bind()
	o.vbo.Bind()
	o.dev.DrawElements(mode, count, indexType, 0)
}

// DrawArrays draws count vertices from the start of the vertex buffer.
func (o *Object) DrawArrays(mode DrawMode, count int32) {
	o.vao.Bind()
	o.vbo.Bind()
	o.dev.DrawArrays(mode, 0, count)
}

// Delete releases the vertex array and buffers.
func (o *Object) Delete() {
	if o.ebo != nil {
		o.ebo.Delete()
	}
	o.vbo.Delete()
	o.vao.Delete()
}

// UploadVertices uploads a slice of vertex values into obj.
func UploadVertices[T any](obj *Object, vertices []T, usage Usage) {
	obj.SetVertexData(sliceBytes(vertices), slicePtr(vertices), usage)
}

// UploadIndices uploads a slice of indices into obj and sets the object's
// index type to match T.
func UploadIndices[T uint8 | uint16 | uint32](obj *Object, indices []T, usage Usage) error {
	if err := obj.SetIndexData(sliceBytes(indices), slicePtr(indices), usage); err != nil {
		return fmt.Errorf("upload indices: %w", err)
	}
	var zero T
	switch any(zero).(type) {
	case uint8:
		obj.indexType = UnsignedByte
	case uint16:
		obj.indexType = UnsignedShort
	default:
		obj.indexType = UnsignedInt
	}
	return nil
}
