package tensor

import (
	"fmt"
	"math"
	"unsafe"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tensor is a dense, row-major, N-dimensional array of T.
//
// A Tensor exclusively owns its storage: constructors copy their inputs,
// Clone allocates a fresh buffer, and Data returns a copy. The zero value is
// not usable; create tensors with New, Full, FromSlice or Scalar.
//
// Example:
//
//	t, err := tensor.New[float64](2, 3)
//	if err != nil {
//	    return err
//	}
//	_ = t.SetIndex(1.5, 1, 2)
type Tensor[T Numeric] struct {
	data    []T
	shape   Shape
	strides []int
}

// New creates a zero-filled tensor with the given dimensions.
// A call with no dimensions creates a scalar tensor.
func New[T Numeric](shape ...int) (*Tensor[T], error) {
	s := Shape(shape)
	if err := validateAlloc[T](s); err != nil {
		return nil, err
	}
	return newOwned[T](s.Clone(), make([]T, s.NumElements())), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, _ := tensor.Full[float32](tensor.Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	t.Fill(value)
	return t, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	if err := validateAlloc[T](shape); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	return newOwned[T](shape.Clone(), append(make([]T, 0, len(data)), data...)), nil
}

// Scalar creates a rank-0 tensor holding v.
func Scalar[T Numeric](v T) *Tensor[T] {
	return newOwned[T](Shape{}, []T{v})
}

// maxAllocBytes is the largest buffer the runtime will hand out: 48-bit
// heap addresses on 64-bit platforms, the int range on 32-bit ones.
const maxAllocBytes = min(1<<48, math.MaxInt)

// validateAlloc checks the shape and that its buffer of T can be allocated.
func validateAlloc[T Numeric](shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n := shape.NumElements(); n > maxAllocBytes/size {
		return fmt.Errorf("%w: %d elements of %d bytes exceed the %d byte allocation limit",
			ErrInvalidShape, n, size, maxAllocBytes)
	}
	return nil
}

// newOwned wraps storage the caller already owns.
func newOwned[T Numeric](shape Shape, data []T) *Tensor[T] {
	return &Tensor[T]{
		data:    data,
		shape:   shape,
		strides: shape.ComputeStrides(),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Strides returns a copy of the row-major strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.strides...)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// At returns the element at the given flat row-major index.
func (t *Tensor[T]) At(flat int) (T, error) {
	if flat < 0 || flat >= len(t.data) {
		var zero T
		return zero, fmt.Errorf("%w: flat index %d for %d elements", ErrOutOfRange, flat, len(t.data))
	}
	return t.data[flat], nil
}

// Set stores v at the given flat row-major index.
func (t *Tensor[T]) Set(flat int, v T) error {
	if flat < 0 || flat >= len(t.data) {
		return fmt.Errorf("%w: flat index %d for %d elements", ErrOutOfRange, flat, len(t.data))
	}
	t.data[flat] = v
	return nil
}

// AtIndex returns the element at the given coordinates.
//
// Example:
//
//	t, _ := tensor.New[float32](3, 4)
//	value, err := t.AtIndex(1, 2) // Row 1, column 2
func (t *Tensor[T]) AtIndex(idx ...int) (T, error) {
	offset, err := t.shape.Offset(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// SetIndex stores v at the given coordinates.
func (t *Tensor[T]) SetIndex(v T, idx ...int) error {
	offset, err := t.shape.Offset(idx...)
	if err != nil {
		return err
	}
	t.data[offset] = v
	return nil
}

// Item returns the value of a single-element tensor.
func (t *Tensor[T]) Item() (T, error) {
	if len(t.data) != 1 {
		var zero T
		return zero, fmt.Errorf("%w: Item needs exactly one element, shape is %v", ErrOutOfRange, t.shape)
	}
	return t.data[0], nil
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor[T]) Data() []T {
	return append(make([]T, 0, len(t.data)), t.data...)
}

// Fill assigns v to every element.
func (t *Tensor[T]) Fill(v T) {
	for i := range t.data {
		t.data[i] = v
	}
}

// CopyFrom overwrites every element with the matching element of src.
func (t *Tensor[T]) CopyFrom(src *Tensor[T]) error {
	if !t.shape.Equal(src.shape) {
		return fmt.Errorf("%w: cannot copy %v into %v", ErrShapeMismatch, src.shape, t.shape)
	}
	copy(t.data, src.data)
	return nil
}

// Clone creates a deep copy of the tensor with its own buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return newOwned[T](t.shape.Clone(), t.Data())
}

// Equal reports whether both tensors have the same shape and elementwise
// equal values under T's == (so NaN never equals NaN).
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both tensors have the same shape and every
// element pair is within tol, absolutely or relatively. NaNs match NaNs
// and infinities match infinities of the same sign.
func (t *Tensor[T]) EqualApprox(other *Tensor[T], tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		a, b := float64(v), float64(other.data[i])
		switch {
		case math.IsNaN(a) || math.IsNaN(b):
			if !math.IsNaN(a) || !math.IsNaN(b) {
				return false
			}
		case math.IsInf(a, 0) || math.IsInf(b, 0):
			if a != b {
				return false
			}
		case !scalar.EqualWithinAbsOrRel(a, b, tol, tol):
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
