package render

import "github.com/chewxy/math32"

// Transform places a render object: scale, then rotate around Z, then
// translate.
type Transform struct {
	Position [3]float32
	Rotation float32 // radians, counter-clockwise around +Z
	Scale    [3]float32
}

// Identity returns a transform that leaves vertices unchanged.
func Identity() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Matrix returns the column-major model matrix T·R·S.
func (t Transform) Matrix() [16]float32 {
	s, c := math32.Sincos(t.Rotation)
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	return [16]float32{
		c * sx, s * sx, 0, 0,
		-s * sy, c * sy, 0, 0,
		0, 0, sz, 0,
		t.Position[0], t.Position[1], t.Position[2], 1,
	}
}

// Apply writes the model matrix to the named uniform of m.
func (t Transform) Apply(m *Material, uniform string) {
	m.SetMat4(uniform, t.Matrix())
}
