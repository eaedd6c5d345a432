package tensor

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Uint64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

type celsius float64

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Uint16, DataTypeOf[uint16]())
	assert.Equal(t, Int, DataTypeOf[int]())
	assert.Equal(t, Float64, DataTypeOf[celsius](), "named types map to their underlying kind")

	assert.True(t, Float32.IsFloat())
	assert.False(t, Int64.IsFloat())
	assert.True(t, Int8.IsSigned())
	assert.False(t, Uint32.IsSigned())
	assert.Equal(t, "unknown", Invalid.String())
}

// Construction Tests

func TestNew(t *testing.T) {
	x, err := New[float64](2, 3)
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "New shape")
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, []int{3, 1}, x.Strides())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, x.Data())
}

func TestNew_Scalar(t *testing.T) {
	x, err := New[int32]()
	require.NoError(t, err)

	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, 1, x.NumElements())

	v, err := x.Item()
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
}

func TestNew_Empty(t *testing.T) {
	x, err := New[float32](3, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, x.NumElements())
	assertEqualShape(t, Shape{3, 0, 2}, x.Shape(), "empty shape kept")
	assert.Empty(t, x.Data())
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{"negative", []int{-1}},
		{"negative inner", []int{2, -3, 4}},
		{"overflow", []int{math.MaxInt, 2}},
		{"overflow three dims", []int{1 << 31, 1 << 31, 4}},
		{"buffer too large", []int{1 << 50}},
		{"buffer too large multi dim", []int{1 << 25, 1 << 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := New[float64](tt.shape...)
			assert.Nil(t, x)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestNew_AllocationLimitDependsOnElementSize(t *testing.T) {
	// 2^46 float64 elements need 2^49 bytes; the same count of int8 fits the limit.
	_, err := Full[float64](Shape{1 << 46}, 1)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromSlice([]float64{}, Shape{1 << 47})
	assert.ErrorIs(t, err, ErrInvalidShape, "size check runs before the length check")

	assert.Less(t, 1<<46, maxAllocBytes/int(unsafe.Sizeof(int8(0))))
}

func TestNew_ZeroDimensionBeatsOverflow(t *testing.T) {
	x, err := New[float64](math.MaxInt, math.MaxInt, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, x.NumElements())
}

func TestFull(t *testing.T) {
	x, err := Full[float32](Shape{2, 2}, 3.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{3.5, 3.5, 3.5, 3.5}, x.Data())

	_, err = Full[float32](Shape{-2}, 1)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSlice(t *testing.T) {
	src := []int64{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(src, Shape{2, 3})
	require.NoError(t, err)

	src[0] = 100
	v, err := x.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "FromSlice must copy its input")

	_, err = FromSlice([]int64{1, 2}, Shape{3})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice([]int64{1}, Shape{-1})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSlice_ShapeIsCopied(t *testing.T) {
	shape := Shape{2, 2}
	x, err := FromSlice([]float64{1, 2, 3, 4}, shape)
	require.NoError(t, err)

	shape[0] = 4
	assertEqualShape(t, Shape{2, 2}, x.Shape(), "caller mutation")

	got := x.Shape()
	got[1] = 9
	assertEqualShape(t, Shape{2, 2}, x.Shape(), "Shape() returns a copy")
}

func TestScalar(t *testing.T) {
	x := Scalar(2.5)
	assert.Equal(t, 0, x.Rank())

	v, err := x.AtIndex()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

// Access Tests

func TestAtSet(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	require.NoError(t, x.Set(1, 20))
	v, err := x.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	_, err = x.At(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = x.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, x.Set(3, 1), ErrOutOfRange)
}

func TestAtIndex(t *testing.T) {
	x, err := FromSlice([]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, Shape{2, 3, 2})
	require.NoError(t, err)

	tests := []struct {
		idx  []int
		want int32
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 1}, 1},
		{[]int{0, 2, 1}, 5},
		{[]int{1, 0, 0}, 6},
		{[]int{1, 2, 1}, 11},
	}
	for _, tt := range tests {
		got, err := x.AtIndex(tt.idx...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "AtIndex(%v)", tt.idx)
	}

	require.NoError(t, x.SetIndex(-7, 1, 1, 0))
	v, err := x.At(8)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v)
}

func TestAtIndex_OutOfRange(t *testing.T) {
	x, err := New[float64](2, 3)
	require.NoError(t, err)

	for _, idx := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0}, {0, 0, 0}} {
		_, err := x.AtIndex(idx...)
		assert.ErrorIs(t, err, ErrOutOfRange, "AtIndex(%v)", idx)
		assert.ErrorIs(t, x.SetIndex(1, idx...), ErrOutOfRange, "SetIndex(%v)", idx)
	}
}

func TestItem_NotSingle(t *testing.T) {
	x, err := New[float64](2)
	require.NoError(t, err)

	_, err = x.Item()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestData_IsCopy(t *testing.T) {
	x, err := FromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)

	d := x.Data()
	d[0] = 42

	v, _ := x.At(0)
	assert.Equal(t, 1.0, v)
}

func TestFillAndCopyFrom(t *testing.T) {
	x, err := New[uint8](2, 2)
	require.NoError(t, err)
	x.Fill(7)
	assert.Equal(t, []uint8{7, 7, 7, 7}, x.Data())

	y, err := FromSlice([]uint8{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	require.NoError(t, x.CopyFrom(y))
	assert.True(t, x.Equal(y))

	z, err := New[uint8](4)
	require.NoError(t, err)
	assert.ErrorIs(t, z.CopyFrom(y), ErrShapeMismatch)
}

// Value semantics

func TestClone(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := x.Clone()
	assert.True(t, c.Equal(x))

	require.NoError(t, c.Set(0, 99))
	v, _ := x.At(0)
	assert.Equal(t, 1.0, v, "clone must not share storage")
	assert.False(t, c.Equal(x))
}

func TestEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	flat, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{4})
	nan, _ := FromSlice([]float64{math.NaN()}, Shape{1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(flat), "different shapes")
	assert.False(t, nan.Equal(nan.Clone()), "NaN is never equal under ==")
}

func TestEqualApprox(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, math.Inf(-1), math.NaN()}, Shape{4})
	b, _ := FromSlice([]float64{1 + 1e-12, 2, math.Inf(-1), math.NaN()}, Shape{4})
	c, _ := FromSlice([]float64{1.1, 2, math.Inf(-1), math.NaN()}, Shape{4})
	d, _ := FromSlice([]float64{1, 2, math.Inf(1), math.NaN()}, Shape{4})
	e, _ := FromSlice([]float64{1, 2, math.Inf(-1), 0}, Shape{4})

	assert.True(t, a.EqualApprox(b, 1e-9))
	assert.False(t, a.EqualApprox(c, 1e-9))
	assert.False(t, a.EqualApprox(d, 1e-9), "infinities of different sign")
	assert.False(t, a.EqualApprox(e, 1e-9), "NaN against a number")
}

func TestString(t *testing.T) {
	x, err := New[float32](2, 3)
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2 3]", x.String())
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidShape, ErrOutOfRange))
	assert.False(t, errors.Is(ErrOutOfRange, ErrShapeMismatch))
}
