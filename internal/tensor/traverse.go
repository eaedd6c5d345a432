package tensor

import "github.com/optfuncs/numkernel/internal/parallel"

// Reduce folds fn over the elements of t in row-major order, starting from
// init. The order is fixed so floating-point results are bit-reproducible.
// An empty tensor returns init unchanged.
//
// Example:
//
//	sum := tensor.Reduce(t, 0.0, func(acc, v float64) float64 { return acc + v })
func Reduce[T Numeric, A any](t *Tensor[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for v := range t.Values() {
		acc = fn(acc, v)
	}
	return acc
}

// Map applies fn to every element of t and returns a freshly allocated
// tensor of the same shape. Elements are independent, so chunks may be
// evaluated concurrently according to cfg; the result does not depend on
// cfg. The input is never mutated.
func Map[T, U Numeric](t *Tensor[T], fn func(T) U, cfg parallel.Config) *Tensor[U] {
	src := t.data
	dst := make([]U, len(src))

	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	}, cfg)

	return newOwned[U](t.shape.Clone(), dst)
}
