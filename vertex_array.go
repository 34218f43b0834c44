package render

// VertexArray is a vertex array object together with the layout that
// describes the vertex buffer read through it.
type VertexArray struct {
	dev    VertexArrayDriver
	id     uint32
	layout *Layout
}

// NewVertexArray generates a vertex array object. Its layout is limited to
// the number of attribute slots dev reports.
func NewVertexArray(dev VertexArrayDriver) *VertexArray {
	return &VertexArray{
		dev:    dev,
		id:     dev.GenVertexArray(),
		layout: NewLayout(dev.MaxVertexAttribs()),
	}
}

// ID returns the driver handle, or 0 after Delete.
func (va *VertexArray) ID() uint32 { return va.id }

// Layout returns the attribute layout.
func (va *VertexArray) Layout() *Layout { return va.layout }

// Bind binds the vertex array.
func (va *VertexArray) Bind() {
	va.dev.BindVertexArray(va.id)
}

// Unbind binds vertex array 0.
func (va *VertexArray) Unbind() {
	va.dev.BindVertexArray(0)
}

// Compile binds the array and vbo and writes the layout's attribute
// pointers, which then read from vbo.
func (va *VertexArray) Compile(vbo *Buffer) Plan {
	va.Bind()
	if vbo != nil {
		vbo.Bind()
	}
	return va.layout.Compile(va.dev)
}

// Delete releases the vertex array object. Further calls are no-ops.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.id)
	va.id = 0
}
