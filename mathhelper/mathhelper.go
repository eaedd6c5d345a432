// Copyright 2025 The numkernel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mathhelper

import (
	"github.com/optfuncs/numkernel/internal/mathhelper"
	"github.com/optfuncs/numkernel/internal/parallel"
	"github.com/optfuncs/numkernel/tensor"
)

// Option adjusts how Log and Exp are scheduled.
type Option = mathhelper.Option

// ParallelConfig controls chunked parallel execution.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the scheduling used when no option is given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SumVec returns the sum of all elements in row-major order.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{1, 2, 3}, tensor.Shape{3})
//	mathhelper.SumVec(x) // 6
func SumVec[T tensor.Numeric](in *tensor.Tensor[T]) T {
	return mathhelper.SumVec(in)
}

// ProdVec returns the product of all elements in row-major order.
func ProdVec[T tensor.Numeric](in *tensor.Tensor[T]) T {
	return mathhelper.ProdVec(in)
}

// Log computes element-wise natural logarithm into a new tensor.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{0, 1}, tensor.Shape{2})
//	y := mathhelper.Log(x) // [-Inf, 0]
func Log[T tensor.Numeric](in *tensor.Tensor[T], opts ...Option) *tensor.Tensor[T] {
	return mathhelper.Log(in, opts...)
}

// Exp computes element-wise exponential into a new tensor.
func Exp[T tensor.Numeric](in *tensor.Tensor[T], opts ...Option) *tensor.Tensor[T] {
	return mathhelper.Exp(in, opts...)
}

// WithParallel replaces the scheduling configuration.
func WithParallel(cfg ParallelConfig) Option {
	return mathhelper.WithParallel(cfg)
}

// WithWorkers caps the number of goroutines; n <= 1 runs sequentially.
func WithWorkers(n int) Option {
	return mathhelper.WithWorkers(n)
}

// Sequential forces evaluation on the calling goroutine.
func Sequential() Option {
	return mathhelper.Sequential()
}
