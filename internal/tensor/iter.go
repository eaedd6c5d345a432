package tensor

import "iter"

// Values returns a sequence over the elements in row-major order.
// The sequence is lazy and can be ranged over any number of times; each
// pass observes the tensor's contents at the time it runs.
func (t *Tensor[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a sequence of (flat index, value) pairs in row-major order.
func (t *Tensor[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.data {
			if !yield(i, v) {
				return
			}
		}
	}
}
