package render

import "errors"

var (
	// ErrCapacityExceeded is reported when a layout slot would reach or pass
	// the driver's maximum vertex attribute count.
	ErrCapacityExceeded = errors.New("vertex attribute capacity exceeded")

	// ErrUnknownScalarType is reported for scalar types with no byte width.
	ErrUnknownScalarType = errors.New("unknown scalar type")

	// ErrInvalidAttribute is reported for descriptors with a component
	// count below one or a negative slot.
	ErrInvalidAttribute = errors.New("invalid vertex attribute")

	// ErrShaderCompile wraps the info log of a shader stage that failed to compile.
	ErrShaderCompile = errors.New("shader compilation failed")

	// ErrProgramLink wraps the info log of a program that failed to link.
	ErrProgramLink = errors.New("shader program linking failed")

	// ErrNoIndexBuffer is returned when index data is given to an object
	// created without an element buffer.
	ErrNoIndexBuffer = errors.New("object has no index buffer")
)
