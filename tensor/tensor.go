// Copyright 2025 The numkernel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/optfuncs/numkernel/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
// Any integer or floating-point type qualifies, including named types.
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Uint    DataType = tensor.Uint
	Uintptr DataType = tensor.Uintptr
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense, row-major tensor that owns its storage.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	v, err := x.AtIndex(1, 2) // 6
type Tensor[T Numeric] = tensor.Tensor[T]

// Errors returned by construction and element access.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrOutOfRange    = tensor.ErrOutOfRange
	ErrShapeMismatch = tensor.ErrShapeMismatch
)

// Creation functions

// New creates a zero-filled tensor with the given dimensions.
//
// Example:
//
//	x, err := tensor.New[float32](2, 3)
func New[T Numeric](shape ...int) (*Tensor[T], error) {
	return tensor.New[T](shape...)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a rank-0 tensor holding v.
func Scalar[T Numeric](v T) *Tensor[T] {
	return tensor.Scalar(v)
}

// DataTypeOf reports the DataType of T.
func DataTypeOf[T Numeric]() DataType {
	return tensor.DataTypeOf[T]()
}

// Gonum interop

// ToVecDense flattens a non-empty tensor into a gonum vector.
func ToVecDense[T Numeric](t *Tensor[T]) (*mat.VecDense, error) {
	return tensor.ToVecDense(t)
}

// ToDense converts a non-empty rank-2 tensor into a gonum matrix.
func ToDense[T Numeric](t *Tensor[T]) (*mat.Dense, error) {
	return tensor.ToDense(t)
}

// FromMatrix copies a gonum matrix into a tensor of shape [rows, cols].
// Integer element types truncate toward zero and saturate.
func FromMatrix[T Numeric](m mat.Matrix) *Tensor[T] {
	return tensor.FromMatrix[T](m)
}
