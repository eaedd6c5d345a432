package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToVecDense flattens t into a gonum vector in row-major order.
// gonum does not allow zero-length vectors, so empty tensors are rejected.
func ToVecDense[T Numeric](t *Tensor[T]) (*mat.VecDense, error) {
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: cannot build a gonum vector from empty shape %v", ErrInvalidShape, t.shape)
	}
	return mat.NewVecDense(len(t.data), toFloat64s(t.data)), nil
}

// ToDense converts a non-empty rank-2 tensor into a gonum matrix.
func ToDense[T Numeric](t *Tensor[T]) (*mat.Dense, error) {
	if len(t.shape) != 2 || len(t.data) == 0 {
		return nil, fmt.Errorf("%w: gonum matrix needs a non-empty rank-2 shape, got %v", ErrInvalidShape, t.shape)
	}
	return mat.NewDense(t.shape[0], t.shape[1], toFloat64s(t.data)), nil
}

// FromMatrix copies m into a new tensor of shape [rows, cols], converting
// each element with FromFloat64.
func FromMatrix[T Numeric](m mat.Matrix) *Tensor[T] {
	r, c := m.Dims()
	data := make([]T, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, FromFloat64[T](m.At(i, j)))
		}
	}
	return newOwned[T](Shape{r, c}, data)
}

func toFloat64s[T Numeric](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
