// Copyright 2025 The numkernel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mathhelper provides reductions and elementwise transforms over
// tensors.
//
// # Overview
//
// All functions are stateless generics; there is nothing to construct:
//   - SumVec, ProdVec: fold every element into one scalar
//   - Log, Exp: return a new tensor of the same shape
//
// # Basic Usage
//
//	import (
//	    "github.com/optfuncs/numkernel/mathhelper"
//	    "github.com/optfuncs/numkernel/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//
//	    sum := mathhelper.SumVec(x)   // 6
//	    prod := mathhelper.ProdVec(x) // 6
//	    logs := mathhelper.Log(x)     // [0, 0.693..., 1.098...]
//	}
//
// # Numeric Policy
//
// Reductions accumulate sequentially in row-major order from the identity
// (0 for SumVec, 1 for ProdVec), so repeated calls are bit-identical. Empty
// tensors return the identity. Integer overflow wraps.
//
// Log and Exp never fail on a value: log(0) is -Inf, log of a negative is
// NaN, exp overflow is +Inf and underflow is 0. Integer element types are
// computed in float64, truncated and saturated to the type's range.
//
// # Parallelism
//
// Log and Exp may split large tensors across goroutines. Options such as
// WithWorkers or Sequential change scheduling only, never results.
package mathhelper
