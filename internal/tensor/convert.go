package tensor

import (
	"math"
	"unsafe"
)

// ToFloat64 converts v to float64.
func ToFloat64[T Numeric](v T) float64 {
	return float64(v)
}

// FromFloat64 converts f to T.
//
// Floating-point targets round to nearest and keep ±Inf and NaN. Integer
// targets truncate toward zero and saturate, since Go leaves the conversion
// of out-of-range or non-finite values implementation-defined:
//   - NaN → 0
//   - +Inf or above the range of T → max of T
//   - -Inf or below the range of T → min of T (0 for unsigned types)
func FromFloat64[T Numeric](f float64) T {
	var zero T
	half := 0.5
	if T(half) != zero {
		return T(f)
	}

	if math.IsNaN(f) {
		return zero
	}

	width := int(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		// Signed: [-2^(w-1), 2^(w-1)-1].
		limit := math.Ldexp(1, width-1)
		maxVal := int64(1)<<(width-1) - 1
		switch {
		case f >= limit:
			return T(maxVal)
		case f < -limit:
			return T(-maxVal - 1)
		}
		return T(int64(f))
	}

	// Unsigned: [0, 2^w-1].
	if f <= 0 {
		return zero
	}
	if f >= math.Ldexp(1, width) {
		return T(^uint64(0) >> (64 - width))
	}
	return T(uint64(f))
}
