// Copyright 2025 The numkernel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a generic, dense, N-dimensional array.
//
// # Overview
//
// Tensor[T] stores elements of any integer or floating-point type in a
// contiguous row-major buffer (last dimension varies fastest). Each tensor
// owns its buffer exclusively: constructors copy their input, Clone makes a
// deep copy and Data returns a copy.
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//
//	v, err := x.AtIndex(1, 0)   // 4
//	w, err := x.At(5)           // 6 (flat index)
//	for v := range x.Values() { // row-major traversal
//	    fmt.Println(v)
//	}
//
// # Shapes
//
// A Shape lists one non-negative size per dimension. Shape{} is a scalar
// holding a single element. Any zero dimension makes the tensor empty;
// empty tensors are valid inputs everywhere.
//
// # Errors
//
// Construction fails with ErrInvalidShape for negative dimensions or when
// the element count overflows int. Access outside the tensor fails with
// ErrOutOfRange. Use errors.Is to match:
//
//	if _, err := x.At(10); errors.Is(err, tensor.ErrOutOfRange) {
//	    // ...
//	}
//
// # Gonum
//
// ToVecDense, ToDense and FromMatrix move data to and from
// gonum.org/v1/gonum/mat.
package tensor
