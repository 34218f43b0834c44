/*
Package render wraps the OpenGL object model (vertex arrays, buffers,
shaders, textures) behind small driver interfaces and plans interleaved
vertex layouts for it.

# Overview

Every wrapper talks to the graphics driver through the [Device] interface
(or one of its narrower parts such as [AttribDriver] or [BufferDriver]).
The backend/opengl package implements it with go-gl; the rendertest
package records calls for tests. Nothing here touches a GL context
directly, so the package builds and tests without one.

All calls must happen on the thread that owns the driver context. None of
the types are safe for concurrent use.

# Quick Start

	win, _ := opengl.NewWindow(opengl.WithSize(800, 600))
	defer win.Close()
	dev := win.Device()

	shader, _ := render.LoadShader(dev, "quad.vert", "quad.frag")
	material := render.NewMaterial(shader)

	obj := render.NewObject(dev, render.WithIndexBuffer())
	render.UploadVertices(obj, vertices, render.StaticDraw)
	render.UploadIndices(obj, indices, render.StaticDraw)
	obj.Layout().Append(render.Float, false, 2) // position
	obj.Layout().Append(render.Float, false, 3) // color
	obj.CompileLayout()

	for !win.ShouldClose() {
	    material.Bind()
	    obj.Draw(int32(len(indices)))
	    win.SwapBuffers()
	    win.PollEvents()
	}

# Vertex Layouts

A [Layout] is an ordered list of attribute slots. [Layout.Append] adds an
attribute at the next slot; [Layout.Set] places one at an explicit slot,
filling any skipped slots with unused gaps. [Layout.Plan] packs every
in-use attribute contiguously in slot order:

	stride = sum(size(type) * count) over in-use slots
	offset(slot) = sum(size(type) * count) over in-use slots before it

Gaps take no bytes. For example

	l.Append(render.Float, false, 2)   // slot 0
	l.Set(render.Float, false, 3, 2)   // slot 2, slot 1 is a gap

plans a 20 byte stride with slot 0 at offset 0 and slot 2 at offset 8.

[Layout.Compile] writes the plan to the driver, one attribute pointer per
in-use slot in ascending slot order. Mutating a compiled layout returns it
to draft; the caller compiles again before the next draw.

Slots at or past the driver's attribute limit are rejected with
[ErrCapacityExceeded] and logged; the layout is left unchanged. Unknown
scalar types are logged and assumed to be [DefaultScalarSize] bytes wide.

# Buffers

[Buffer] uploads raw bytes. [SmartBuffer] keeps a typed CPU-side copy that
can be edited with Push, Pop and Clear and sent with Write, which grows the
driver allocation by doubling and otherwise updates it in place.
[SmartObject] pairs two of them with a vertex array.

# Logging

Diagnostics go through log/slog. By default records at Info and above are
written as text to stderr; call [SetVerbose] for debug output or
[SetLogger] to route them elsewhere.
*/
package render
