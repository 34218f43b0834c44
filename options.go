package render

// ObjectOption configures an Object or SmartObject.
type ObjectOption func(*objectOptions)

// objectOptions holds the construction-time settings shared by both
// render object variants.
type objectOptions struct {
	indexed   bool
	drawMode  DrawMode
	indexType ScalarType
	usage     Usage
}

func defaultObjectOptions() objectOptions {
	return objectOptions{
		drawMode:  Triangles,
		indexType: UnsignedInt,
		usage:     StaticDraw,
	}
}

// WithIndexBuffer gives the object an element buffer, so Draw uses
// indexed drawing.
func WithIndexBuffer() ObjectOption {
	return func(o *objectOptions) { o.indexed = true }
}

// WithDrawMode sets the primitive topology. Default is Triangles.
func WithDrawMode(mode DrawMode) ObjectOption {
	return func(o *objectOptions) { o.drawMode = mode }
}

// WithIndexType sets the type of index data. Default is UnsignedInt.
// SmartObject always stores uint32 indices and ignores this option.
func WithIndexType(t ScalarType) ObjectOption {
	return func(o *objectOptions) { o.indexType = t }
}

// WithUsage sets the usage hint a SmartObject writes with. Default is StaticDraw.
func WithUsage(u Usage) ObjectOption {
	return func(o *objectOptions) { o.usage = u }
}

func applyObjectOptions(opts []ObjectOption) objectOptions {
	o := defaultObjectOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
