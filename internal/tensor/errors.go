package tensor

import "errors"

// Sentinel errors returned by tensor construction and access.
// Every message is prefixed with "tensor:"; callers match with errors.Is.
// Numeric domain conditions (log of a negative, exp overflow) are never
// reported through these; they propagate as IEEE values.
var (
	// ErrInvalidShape is returned when a shape has a negative dimension or
	// its element count does not fit in an int.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates a flat index or coordinate outside the tensor.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrShapeMismatch indicates that supplied data or a source tensor does
	// not match the target shape.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")
)
