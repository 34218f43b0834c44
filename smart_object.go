package render

import "unsafe"

// SmartObject is an Object whose vertex and index data live in
// SmartBuffers, so geometry can be edited on the CPU and re-sent with Write.
type SmartObject[V any] struct {
	dev      Device
	vao      *VertexArray
	vertices *SmartBuffer[V]
	indices  *SmartBuffer[uint32] // nil unless WithIndexBuffer
	drawMode DrawMode
	usage    Usage
	plan     Plan // from the last CompileLayout
}

// NewSmartObject generates the vertex array and buffers.
func NewSmartObject[V any](dev Device, opts ...ObjectOption) *SmartObject[V] {
	o := applyObjectOptions(opts)
	obj := &SmartObject[V]{
		dev:      dev,
		vao:      NewVertexArray(dev),
		vertices: NewSmartBuffer[V](dev, ArrayBuffer),
		drawMode: o.drawMode,
		usage:    o.usage,
	}
	obj.vertices.Link(obj.vao)
	if o.indexed {
		obj.indices = NewSmartBuffer[uint32](dev, ElementArrayBuffer)
		obj.indices.Link(obj.vao)
	}
	return obj
}

// Vertices returns the vertex staging buffer.
func (o *SmartObject[V]) Vertices() *SmartBuffer[V] { return o.vertices }

// Indices returns the index staging buffer, or nil.
func (o *SmartObject[V]) Indices() *SmartBuffer[uint32] { return o.indices }

// VertexArray returns the object's vertex array.
func (o *SmartObject[V]) VertexArray() *VertexArray { return o.vao }

// VertexBuffer returns the vertex buffer.
func (o *SmartObject[V]) VertexBuffer() *Buffer { return o.vertices.Buffer() }

// Layout returns the vertex layout.
func (o *SmartObject[V]) Layout() *Layout { return o.vao.Layout() }

// SetDrawMode changes the primitive topology.
func (o *SmartObject[V]) SetDrawMode(mode DrawMode) { o.drawMode = mode }

// Write sends staged vertices and indices to the driver.
func (o *SmartObject[V]) Write() {
	o.vertices.Write(o.usage)
	if o.indices != nil {
		o.indices.Write(o.usage)
	}
}

// CompileLayout writes the layout for the object's vertex buffer and keeps
// the resulting plan for VertexCount.
func (o *SmartObject[V]) CompileLayout() Plan {
	o.plan = o.vao.Compile(o.vertices.Buffer())
	return o.plan
}

// Draw draws count elements, indexed if the object has indices.
func (o *SmartObject[V]) Draw(count int32) {
	o.vao.Bind()
	o.vertices.Bind()
	if o.indices != nil {
		o.dev.DrawElements(o.drawMode, count, UnsignedInt, 0)
		return
	}
	o.dev.DrawArrays(o.drawMode, 0, count)
}

// DrawAll draws everything sent by the last Write. Without indices the
// vertex count is the uploaded byte size divided by the layout stride.
func (o *SmartObject[V]) DrawAll() {
	if o.indices != nil {
		o.Draw(int32(o.indices.Uploaded()))
		return
	}
	o.Draw(int32(o.VertexCount()))
}

// VertexCount returns the number of whole vertices sent by the last Write.
// Each staged value counts as one vertex while the layout is empty. The
// stride comes from the last CompileLayout unless the layout changed since.
func (o *SmartObject[V]) VertexCount() int {
	stride := o.plan.Stride
	if !o.vao.Layout().Compiled() {
		stride = o.vao.Layout().Plan().Stride
	}
	if stride == 0 {
		return o.vertices.Uploaded()
	}
	var zero V
	return o.vertices.Uploaded() * int(unsafe.Sizeof(zero)) / stride
}

// Delete releases the vertex array and buffers.
func (o *SmartObject[V]) Delete() {
	if o.indices != nil {
		o.indices.Delete()
	}
	o.vertices.Delete()
	o.vao.Delete()
}
