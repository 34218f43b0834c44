package render

import "fmt"

// DefaultMaxVertexAttribs is the minimum number of attribute slots every
// OpenGL 3.3+ context provides. NewLayout uses it when given no limit.
const DefaultMaxVertexAttribs = 16

// AttributeDescriptor describes one attribute slot of an interleaved vertex.
// A descriptor with InUse false is a gap: it keeps its index so later slots
// line up with shader locations, but it has no width and no driver state.
type AttributeDescriptor struct {
	Type       ScalarType
	Normalized bool
	Count      int
	InUse      bool
}

// AttributePlan is the compiled placement of one in-use slot.
type AttributePlan struct {
	Slot       int
	Count      int
	Type       ScalarType
	Normalized bool
	Offset     int // bytes from the start of the vertex record
}

// Plan is the result of laying out a Layout: the size of one vertex record
// and the placement of every in-use slot in ascending slot order.
type Plan struct {
	Stride     int
	Attributes []AttributePlan
}

// Offset returns the byte offset of slot, or false if the slot is a gap or
// not part of the plan.
func (p Plan) Offset(slot int) (int, bool) {
	for _, a := range p.Attributes {
		if a.Slot == slot {
			return a.Offset, true
		}
	}
	return 0, false
}

// Layout is an ordered list of attribute slots. Slot i is configured as
// driver attribute index i.
//
// A Layout is built with Append/Set/Pop/Clear and handed to the driver with
// Compile. Mutating a compiled layout does not touch the driver again; call
// Compile before the next draw.
//
// Capacity problems are logged and the operation skipped. Unknown scalar
// types are logged when planned and treated as DefaultScalarSize wide.
type Layout struct {
	slots    []AttributeDescriptor
	max      int
	compiled bool
}

// NewLayout returns an empty layout that holds at most maxAttribs slots.
// A limit of zero or less means DefaultMaxVertexAttribs.
func NewLayout(maxAttribs int) *Layout {
	if maxAttribs <= 0 {
		maxAttribs = DefaultMaxVertexAttribs
	}
	return &Layout{max: maxAttribs}
}

// Len returns the number of slots, gaps included.
func (l *Layout) Len() int { return len(l.slots) }

// Max returns the slot limit. The zero Layout uses DefaultMaxVertexAttribs.
func (l *Layout) Max() int {
	if l.max <= 0 {
		return DefaultMaxVertexAttribs
	}
	return l.max
}

// Compiled reports whether the current contents were handed to a driver.
func (l *Layout) Compiled() bool { return l.compiled }

// Slot returns the descriptor at index i.
func (l *Layout) Slot(i int) (AttributeDescriptor, bool) {
	if i < 0 || i >= len(l.slots) {
		return AttributeDescriptor{}, false
	}
	return l.slots[i], true
}

// Descriptors returns a copy of all slots.
func (l *Layout) Descriptors() []AttributeDescriptor {
	out := make([]AttributeDescriptor, len(l.slots))
	copy(out, l.slots)
	return out
}

// Append adds an in-use attribute at the next slot. If the layout is full
// the call is logged and ignored, and ErrCapacityExceeded is returned.
func (l *Layout) Append(typ ScalarType, normalized bool, count int) error {
	if count < 1 {
		return l.reject("append", len(l.slots), fmt.Errorf("%w: component count %d", ErrInvalidAttribute, count))
	}
	if len(l.slots) >= l.Max() {
		return l.reject("append", len(l.slots), fmt.Errorf("%w: slot %d, max %d", ErrCapacityExceeded, len(l.slots), l.Max()))
	}
	l.slots = append(l.slots, AttributeDescriptor{Type: typ, Normalized: normalized, Count: count, InUse: true})
	l.compiled = false
	return nil
}

// Set places an attribute at an explicit slot. Slots between the current
// end and slot are filled with gaps; an existing slot is replaced.
// A slot at or past the limit is logged and ignored.
func (l *Layout) Set(typ ScalarType, normalized bool, count, slot int) error {
	if slot < 0 || count < 1 {
		return l.reject("set", slot, fmt.Errorf("%w: slot %d, component count %d", ErrInvalidAttribute, slot, count))
	}
	if slot >= l.Max() {
		return l.reject("set", slot, fmt.Errorf("%w: slot %d, max %d", ErrCapacityExceeded, slot, l.Max()))
	}
	desc := AttributeDescriptor{Type: typ, Normalized: normalized, Count: count, InUse: true}
	if slot < len(l.slots) {
		l.slots[slot] = desc
	} else {
		if gaps := slot - len(l.slots); gaps > 0 {
			Logger().Debug("layout back-filling gap slots", "from", len(l.slots), "count", gaps)
		}
		for len(l.slots) < slot {
			l.slots = append(l.slots, AttributeDescriptor{})
		}
		l.slots = append(l.slots, desc)
	}
	l.compiled = false
	return nil
}

// Pop removes the last slot, gap or not. It does nothing on an empty layout.
func (l *Layout) Pop() {
	if len(l.slots) == 0 {
		return
	}
	l.slots = l.slots[:len(l.slots)-1]
	l.compiled = false
}

// Clear removes every slot.
func (l *Layout) Clear() {
	l.slots = l.slots[:0]
	l.compiled = false
}

func (l *Layout) reject(op string, slot int, err error) error {
	Logger().Warn("layout operation skipped", "op", op, "slot", slot, "err", err)
	return err
}

// Plan computes the stride and offsets without touching a driver.
//
// The stride is the sum of count*width over in-use slots. Offsets are then
// assigned walking the slots backwards from the stride, subtracting each
// slot's width before recording it, which packs attributes contiguously in
// ascending slot order from offset 0. Gaps have zero width.
func (l *Layout) Plan() Plan {
	widths := make([]int, len(l.slots))
	stride := 0
	for i, s := range l.slots {
		if !s.InUse {
			continue
		}
		widths[i] = s.Count * scalarWidth(s.Type, i)
		stride += widths[i]
	}

	attrs := make([]AttributePlan, 0, len(l.slots))
	offset := stride
	for i := len(l.slots) - 1; i >= 0; i-- {
		s := l.slots[i]
		if !s.InUse {
			continue
		}
		offset -= widths[i]
		attrs = append(attrs, AttributePlan{
			Slot:       i,
			Count:      s.Count,
			Type:       s.Type,
			Normalized: s.Normalized,
			Offset:     offset,
		})
	}
	for i, j := 0, len(attrs)-1; i < j; i, j = i+1, j-1 {
		attrs[i], attrs[j] = attrs[j], attrs[i]
	}

	return Plan{Stride: stride, Attributes: attrs}
}

// Compile plans the layout and registers every in-use slot with the driver:
// one attribute pointer and one enable per slot, in ascending slot order.
// The vertex array and the backing array buffer must already be bound.
// Compiling an unchanged layout again issues the same calls.
func (l *Layout) Compile(d AttribDriver) Plan {
	p := l.Plan()
	log := Logger()
	for _, a := range p.Attributes {
		log.Debug("writing layout",
			"slot", a.Slot, "count", a.Count, "type", a.Type,
			"normalized", a.Normalized, "stride", p.Stride, "offset", a.Offset)
		d.VertexAttribPointer(uint32(a.Slot), int32(a.Count), a.Type, a.Normalized, int32(p.Stride), uintptr(a.Offset))
		d.EnableVertexAttribArray(uint32(a.Slot))
	}
	l.compiled = true
	return p
}

// scalarWidth returns the byte width of typ, falling back to
// DefaultScalarSize with a warning for unrecognized types.
func scalarWidth(typ ScalarType, slot int) int {
	if n, ok := typ.Size(); ok {
		return n
	}
	Logger().Warn("unknown scalar type in layout, assuming 4 bytes",
		"slot", slot, "err", fmt.Errorf("%w: %v", ErrUnknownScalarType, typ))
	return DefaultScalarSize
}
