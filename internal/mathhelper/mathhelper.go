// Package mathhelper implements reductions and elementwise transforms over
// tensors. Every function is a pure pass over a read-only input.
package mathhelper

import (
	"math"

	"github.com/optfuncs/numkernel/internal/parallel"
	"github.com/optfuncs/numkernel/internal/tensor"
)

// SumVec returns the sum of all elements, accumulated in row-major order
// starting from 0. An empty tensor sums to 0. Integer overflow wraps and
// floating-point overflow follows IEEE rules.
func SumVec[T tensor.Numeric](in *tensor.Tensor[T]) T {
	mustNotBeNil(in, "sumvec")
	return tensor.Reduce(in, T(0), func(acc, v T) T { return acc + v })
}

// ProdVec returns the product of all elements, accumulated in row-major
// order starting from 1. An empty tensor has product 1.
func ProdVec[T tensor.Numeric](in *tensor.Tensor[T]) T {
	mustNotBeNil(in, "prodvec")
	return tensor.Reduce(in, T(1), func(acc, v T) T { return acc * v })
}

// Log computes element-wise natural logarithm: ln(x).
//
// Non-positive inputs are not errors: log(0) is -Inf and log of a negative
// value is NaN for floating-point T. Integer T saturates, see
// tensor.FromFloat64.
func Log[T tensor.Numeric](in *tensor.Tensor[T], opts ...Option) *tensor.Tensor[T] {
	mustNotBeNil(in, "log")
	return unary(in, math.Log, opts)
}

// Exp computes element-wise exponential: exp(x).
// Overflow yields +Inf and underflow yields 0 for floating-point T.
func Exp[T tensor.Numeric](in *tensor.Tensor[T], opts ...Option) *tensor.Tensor[T] {
	mustNotBeNil(in, "exp")
	return unary(in, math.Exp, opts)
}

// unary lifts a float64 function to T and maps it over in.
// float32 inputs are evaluated in float64 and rounded once.
func unary[T tensor.Numeric](in *tensor.Tensor[T], fn func(float64) float64, opts []Option) *tensor.Tensor[T] {
	cfg := resolve(opts)
	return tensor.Map(in, func(v T) T {
		return tensor.FromFloat64[T](fn(tensor.ToFloat64(v)))
	}, cfg.parallel)
}

func mustNotBeNil[T tensor.Numeric](in *tensor.Tensor[T], op string) {
	if in == nil {
		panic(op + ": nil tensor")
	}
}

// Option adjusts how an elementwise transform is scheduled.
// Options never change the values produced.
type Option func(*config)

type config struct {
	parallel parallel.Config
}

func resolve(opts []Option) config {
	cfg := config{parallel: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithParallel replaces the scheduling configuration.
func WithParallel(p parallel.Config) Option {
	return func(c *config) {
		c.parallel = p
	}
}

// WithWorkers caps the number of goroutines; n <= 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.parallel.NumWorkers = n
		c.parallel.Enabled = n > 1
	}
}

// Sequential forces evaluation on the calling goroutine.
func Sequential() Option {
	return WithParallel(parallel.Sequential())
}
