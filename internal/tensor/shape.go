package tensor

import (
	"fmt"
	"math"
	"math/bits"
)

// Shape represents the dimensions of a tensor in row-major order.
// An empty Shape describes a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
// The result is only meaningful for a shape that passed Validate.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative and that the
// element count fits in an int. Zero dimensions are allowed.
func (s Shape) Validate() error {
	total := uint64(1)
	overflow := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		hi, lo := bits.Mul64(total, uint64(dim))
		if hi != 0 || lo > math.MaxInt {
			overflow = true
		}
		total = lo
	}
	// A zero dimension anywhere collapses the product, whatever came before.
	if overflow && !s.hasZero() {
		return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, []int(s))
	}
	return nil
}

func (s Shape) hasZero() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset converts a multi-index into a flat row-major offset.
func (s Shape) Offset(idx ...int) (int, error) {
	if len(idx) != len(s) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrOutOfRange, len(s), len(idx))
	}

	offset := 0
	stride := 1
	for i := len(idx) - 1; i >= 0; i-- {
		if idx[i] < 0 || idx[i] >= s[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrOutOfRange, idx[i], i, s[i])
		}
		offset += idx[i] * stride
		stride *= s[i]
	}
	return offset, nil
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
