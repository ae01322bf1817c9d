// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/cmplx"
)

// isNaNInf reports whether v is NaN or ±Inf (either part, for complex values).
// Integers are always finite. Named floating types are not inspected.
func isNaNInf[T Element](v T) bool {
	switch x := any(v).(type) {
	case float32:
		f := float64(x)
		return math.IsNaN(f) || math.IsInf(f, 0)
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case complex64:
		c := complex128(x)
		return cmplx.IsNaN(c) || cmplx.IsInf(c)
	case complex128:
		return cmplx.IsNaN(x) || cmplx.IsInf(x)
	default:
		return false
	}
}

// magnitude returns |v| as float64 and whether the type was recognized.
func magnitude[T Element](v T) (float64, bool) {
	switch x := any(v).(type) {
	case int:
		return math.Abs(float64(x)), true
	case int8:
		return math.Abs(float64(x)), true
	case int16:
		return math.Abs(float64(x)), true
	case int32:
		return math.Abs(float64(x)), true
	case int64:
		return math.Abs(float64(x)), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case float32:
		return math.Abs(float64(x)), true
	case float64:
		return math.Abs(x), true
	case complex64:
		return cmplx.Abs(complex128(x)), true
	case complex128:
		return cmplx.Abs(x), true
	default:
		return 0, false
	}
}

// isZeroWithin reports v == 0, or |v| <= eps when eps > 0.
func isZeroWithin[T Element](v T, eps float64) bool {
	if v == 0 {
		return true
	}
	if eps == 0 {
		return false
	}
	mag, ok := magnitude(v)

	return ok && mag <= eps
}
