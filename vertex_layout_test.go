package render_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/rendertest"
)

// captureLog routes package diagnostics into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	render.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { render.SetLogger(nil) })
	return &buf
}

func offsets(p render.Plan) map[int]int {
	out := make(map[int]int, len(p.Attributes))
	for _, a := range p.Attributes {
		out[a.Slot] = a.Offset
	}
	return out
}

func TestLayoutTwoVec2(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Append(render.Float, false, 2))

	p := l.Plan()
	assert.Equal(t, 16, p.Stride)
	assert.Equal(t, map[int]int{0: 0, 1: 8}, offsets(p))
}

func TestLayoutVec3AndUint(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 3))
	require.NoError(t, l.Append(render.UnsignedInt, false, 1))

	p := l.Plan()
	assert.Equal(t, 16, p.Stride)
	assert.Equal(t, map[int]int{0: 0, 1: 12}, offsets(p))
}

func TestLayoutBoolIsOneByte(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Bool, false, 1))
	require.NoError(t, l.Append(render.Float, false, 2))

	p := l.Plan()
	assert.Equal(t, 9, p.Stride)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, offsets(p))
}

func TestLayoutSetBackfillsGaps(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Set(render.Float, false, 3, 3))

	require.Equal(t, 4, l.Len())
	for i := 0; i < 3; i++ {
		d, ok := l.Slot(i)
		require.True(t, ok)
		assert.False(t, d.InUse, "slot %d should be a gap", i)
	}
	d, _ := l.Slot(3)
	assert.True(t, d.InUse)

	p := l.Plan()
	assert.Equal(t, 12, p.Stride)
	assert.Equal(t, map[int]int{3: 0}, offsets(p))

	dev := rendertest.NewDevice()
	l.Compile(dev)
	assert.Equal(t, []rendertest.Call{
		{Op: "VertexAttribPointer", Args: []any{uint32(3), int32(3), render.Float, false, int32(12), uintptr(0)}},
		{Op: "EnableVertexAttribArray", Args: []any{uint32(3)}},
	}, dev.Calls)
}

func TestLayoutInterspersedGap(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Set(render.Float, false, 3, 2))

	require.Equal(t, 3, l.Len())
	p := l.Plan()
	assert.Equal(t, 20, p.Stride)
	assert.Equal(t, map[int]int{0: 0, 2: 8}, offsets(p))
	_, ok := p.Offset(1)
	assert.False(t, ok, "gap slot must not be planned")
}

func TestLayoutSetReplacesExistingSlot(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Set(render.UnsignedByte, true, 4, 0))

	require.Equal(t, 2, l.Len())
	d, _ := l.Slot(0)
	assert.Equal(t, render.AttributeDescriptor{Type: render.UnsignedByte, Normalized: true, Count: 4, InUse: true}, d)
	assert.Equal(t, 12, l.Plan().Stride)
}

func TestLayoutAppendAtCapacity(t *testing.T) {
	logs := captureLog(t)
	l := render.NewLayout(2)
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Append(render.Float, false, 2))

	err := l.Append(render.Float, false, 2)
	assert.ErrorIs(t, err, render.ErrCapacityExceeded)
	assert.Equal(t, 2, l.Len())
	assert.Contains(t, logs.String(), "layout operation skipped")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestLayoutSetAtCapacity(t *testing.T) {
	logs := captureLog(t)
	l := render.NewLayout(4)

	err := l.Set(render.Float, false, 2, 4)
	assert.ErrorIs(t, err, render.ErrCapacityExceeded)
	assert.Equal(t, 0, l.Len())
	assert.Contains(t, logs.String(), "layout operation skipped")

	require.NoError(t, l.Set(render.Float, false, 2, 3))
	assert.Equal(t, 4, l.Len())
}

func TestLayoutCapacityFromDevice(t *testing.T) {
	dev := rendertest.NewDevice()
	dev.MaxAttribs = 1
	va := render.NewVertexArray(dev)

	require.NoError(t, va.Layout().Append(render.Float, false, 3))
	assert.ErrorIs(t, va.Layout().Append(render.Float, false, 3), render.ErrCapacityExceeded)
	assert.Equal(t, 1, va.Layout().Len())
}

func TestLayoutRejectsInvalidDescriptors(t *testing.T) {
	captureLog(t)
	l := render.NewLayout(16)
	assert.ErrorIs(t, l.Append(render.Float, false, 0), render.ErrInvalidAttribute)
	assert.ErrorIs(t, l.Set(render.Float, false, 2, -1), render.ErrInvalidAttribute)
	assert.Equal(t, 0, l.Len())
}

func TestLayoutPop(t *testing.T) {
	l := render.NewLayout(16)
	assert.NotPanics(t, l.Pop)
	assert.Equal(t, 0, l.Len())

	require.NoError(t, l.Set(render.Float, false, 2, 2))
	l.Pop()
	assert.Equal(t, 2, l.Len(), "pop removes only the last slot")
	l.Pop()
	l.Pop()
	assert.Equal(t, 0, l.Len(), "gap slots are popped too")
}

func TestLayoutClear(t *testing.T) {
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 2))
	require.NoError(t, l.Set(render.Float, false, 2, 5))
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, render.Plan{Stride: 0, Attributes: []render.AttributePlan{}}, l.Plan())
	require.NoError(t, l.Append(render.Int, false, 1))
	assert.Equal(t, 4, l.Plan().Stride)
}

func TestLayoutUnknownScalarType(t *testing.T) {
	logs := captureLog(t)
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.ScalarType(99), false, 2))
	require.NoError(t, l.Append(render.Float, false, 1))

	p := l.Plan()
	assert.Equal(t, 12, p.Stride)
	assert.Equal(t, map[int]int{0: 0, 1: 8}, offsets(p))
	assert.Contains(t, logs.String(), "unknown scalar type")
}

func TestLayoutCompileIsIdempotent(t *testing.T) {
	dev := rendertest.NewDevice()
	l := render.NewLayout(16)
	require.NoError(t, l.Append(render.Float, false, 3))
	require.NoError(t, l.Set(render.Float, false, 2, 2))
	require.NoError(t, l.Append(render.UnsignedByte, true, 4))

	first := l.Compile(dev)
	firstCalls := dev.Calls
	dev.Reset()
	second := l.Compile(dev)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCalls, dev.Calls)
	assert.Equal(t, []string{
		"VertexAttribPointer", "EnableVertexAttribArray",
		"VertexAttribPointer", "EnableVertexAttribArray",
		"VertexAttribPointer", "EnableVertexAttribArray",
	}, dev.Ops())
	assert.Equal(t, []any{uint32(3), int32(4), render.UnsignedByte, true, int32(24), uintptr(20)}, dev.Calls[4].Args)
}

func TestLayoutCompiledState(t *testing.T) {
	dev := rendertest.NewDevice()
	l := render.NewLayout(16)
	assert.False(t, l.Compiled())

	require.NoError(t, l.Append(render.Float, false, 2))
	l.Compile(dev)
	assert.True(t, l.Compiled())

	require.NoError(t, l.Append(render.Float, false, 2))
	assert.False(t, l.Compiled(), "mutation returns the layout to draft")
	assert.Len(t, dev.Calls, 2, "mutation does not recompile")
}

func TestLayoutZeroValueUsesDefaultMax(t *testing.T) {
	var l render.Layout
	assert.Equal(t, render.DefaultMaxVertexAttribs, l.Max())
	require.NoError(t, l.Append(render.Float, false, 1))
}

func TestLayoutPackingProperty(t *testing.T) {
	types := []render.ScalarType{
		render.Float, render.Int, render.UnsignedInt, render.Bool,
		render.Byte, render.UnsignedByte, render.Short, render.UnsignedShort,
		render.HalfFloat, render.Double,
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for iter := 0; iter < 200; iter++ {
		l := render.NewLayout(16)
		n := 1 + rng.IntN(16)
		want := 0
		for i := 0; i < n; i++ {
			typ := types[rng.IntN(len(types))]
			count := 1 + rng.IntN(4)
			require.NoError(t, l.Append(typ, rng.IntN(2) == 0, count))
			size, _ := typ.Size()
			want += size * count
		}

		p := l.Plan()
		require.Equal(t, want, p.Stride)
		require.Len(t, p.Attributes, n)

		next := 0
		for i, a := range p.Attributes {
			require.Equal(t, i, a.Slot)
			require.Equal(t, next, a.Offset, "attribute %d not contiguous", i)
			size, _ := a.Type.Size()
			next += size * a.Count
		}
		require.Equal(t, p.Stride, next)
	}
}
