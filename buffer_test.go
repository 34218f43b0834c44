package render_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/rendertest"
)

func floatsAt(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func uintsAt(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out
}

func TestBufferSetSlice(t *testing.T) {
	dev := rendertest.NewDevice()
	b := render.NewVertexBuffer(dev)

	render.SetSlice(b, []float32{1, 2, 3}, render.StaticDraw)

	assert.Equal(t, 12, b.Size())
	assert.Equal(t, render.StaticDraw, b.Usage())
	assert.Equal(t, b.ID(), dev.Bound(render.ArrayBuffer))
	assert.Equal(t, []float32{1, 2, 3}, floatsAt(dev.Buffers[b.ID()]))
}

func TestBufferEmptySlice(t *testing.T) {
	dev := rendertest.NewDevice()
	b := render.NewVertexBuffer(dev)

	assert.NotPanics(t, func() { render.SetSlice[float32](b, nil, render.StaticDraw) })
	assert.Equal(t, 0, b.Size())
	assert.Len(t, dev.CallsTo("BufferData"), 1)
}

func TestBufferSubSlice(t *testing.T) {
	dev := rendertest.NewDevice()
	b := render.NewVertexBuffer(dev)
	render.SetSlice(b, []float32{1, 2, 3, 4}, render.DynamicDraw)

	render.SetSubSlice(b, 2, []float32{9, 8})
	assert.Equal(t, []float32{1, 2, 9, 8}, floatsAt(dev.Buffers[b.ID()]))
}

func TestBufferSubDataOutOfBounds(t *testing.T) {
	logs := captureLog(t)
	dev := rendertest.NewDevice()
	b := render.NewVertexBuffer(dev)
	render.SetSlice(b, []float32{1, 2}, render.DynamicDraw)
	dev.Reset()

	render.SetSubSlice(b, 1, []float32{5, 6})
	assert.Empty(t, dev.CallsTo("BufferSubData"))
	assert.Contains(t, logs.String(), "out of bounds")
}

func TestBufferDeleteOnce(t *testing.T) {
	dev := rendertest.NewDevice()
	b := render.NewElementBuffer(dev)
	id := b.ID()

	b.Delete()
	b.Delete()

	assert.Equal(t, uint32(0), b.ID())
	require.Len(t, dev.CallsTo("DeleteBuffer"), 1)
	assert.Equal(t, []any{id}, dev.CallsTo("DeleteBuffer")[0].Args)
}

func TestSmartBufferGrowsAndUpdatesInPlace(t *testing.T) {
	dev := rendertest.NewDevice()
	s := render.NewSmartBuffer[float32](dev, render.ArrayBuffer)

	s.Push(1, 2)
	s.Write(render.DynamicDraw)
	assert.Equal(t, 8, s.Buffer().Size())
	assert.Equal(t, 2, s.Uploaded())

	dev.Reset()
	s.Pop()
	s.Push(7)
	s.Write(render.DynamicDraw)
	assert.Empty(t, dev.CallsTo("BufferData"), "data that fits is updated in place")
	assert.Len(t, dev.CallsTo("BufferSubData"), 1)
	assert.Equal(t, []float32{1, 7}, floatsAt(dev.Buffers[s.Buffer().ID()]))

	dev.Reset()
	s.Push(3, 4, 5)
	s.Write(render.DynamicDraw)
	require.Len(t, dev.CallsTo("BufferData"), 1)
	assert.Equal(t, 20, s.Buffer().Size(), "grows to the data size when doubling is not enough")
	assert.Equal(t, []float32{1, 7, 3, 4, 5}, floatsAt(dev.Buffers[s.Buffer().ID()]))

	dev.Reset()
	s.Push(6)
	s.Write(render.DynamicDraw)
	assert.Equal(t, 40, s.Buffer().Size(), "capacity doubles")
}

func TestSmartBufferUsageChangeReallocates(t *testing.T) {
	dev := rendertest.NewDevice()
	s := render.NewSmartBuffer[uint32](dev, render.ElementArrayBuffer)
	s.Push(0, 1, 2)
	s.Write(render.StaticDraw)
	dev.Reset()

	s.Write(render.StreamDraw)
	require.Len(t, dev.CallsTo("BufferData"), 1)
	assert.Equal(t, render.StreamDraw, s.Buffer().Usage())
	assert.Equal(t, 12, s.Buffer().Size(), "a usage change keeps the allocation size")
	assert.Equal(t, []uint32{0, 1, 2}, uintsAt(dev.Buffers[s.Buffer().ID()]))
}

func TestSmartBufferAlternatingUsageDoesNotGrow(t *testing.T) {
	dev := rendertest.NewDevice()
	s := render.NewSmartBuffer[float32](dev, render.ArrayBuffer)
	s.Push(1, 2, 3, 4)

	for i := 0; i < 20; i++ {
		usage := render.StaticDraw
		if i%2 == 1 {
			usage = render.DynamicDraw
		}
		s.Write(usage)
		require.Equal(t, 16, s.Buffer().Size(), "write %d", i)
		require.Equal(t, usage, s.Buffer().Usage())
	}
	assert.Equal(t, []float32{1, 2, 3, 4}, floatsAt(dev.Buffers[s.Buffer().ID()]))

	s.Push(5)
	s.Write(render.StreamDraw)
	assert.Equal(t, 32, s.Buffer().Size(), "data that no longer fits still doubles")
	assert.Equal(t, render.StreamDraw, s.Buffer().Usage())
}

func TestSmartBufferEmptyWriteAndPop(t *testing.T) {
	dev := rendertest.NewDevice()
	s := render.NewSmartBuffer[float32](dev, render.ArrayBuffer)

	assert.NotPanics(t, s.Pop)
	assert.NotPanics(t, func() { s.Write(render.StaticDraw) })
	assert.Empty(t, dev.CallsTo("BufferSubData"))
	assert.Equal(t, 0, s.Uploaded())

	s.Push(1, 2, 3)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSmartBufferLinkedBindsVertexArrayFirst(t *testing.T) {
	dev := rendertest.NewDevice()
	va := render.NewVertexArray(dev)
	s := render.NewSmartBuffer[uint32](dev, render.ElementArrayBuffer)
	s.Link(va)
	s.Push(0, 1, 2)
	dev.Reset()

	s.Write(render.StaticDraw)
	require.NotEmpty(t, dev.Calls)
	assert.Equal(t, rendertest.Call{Op: "BindVertexArray", Args: []any{va.ID()}}, dev.Calls[0])
}

func TestFromBufferReusesAllocation(t *testing.T) {
	dev := rendertest.NewDevice()
	b := render.NewVertexBuffer(dev)
	b.SetData(64, nil, render.DynamicDraw)
	dev.Reset()

	s := render.FromBuffer[float32](b)
	s.Push(1, 2, 3)
	s.Write(render.DynamicDraw)
	assert.Empty(t, dev.CallsTo("BufferData"))
	assert.Equal(t, 64, b.Size())
}
