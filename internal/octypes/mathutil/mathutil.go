// Package mathutil provides the ULP-based float comparisons, loose
// (epsilon) comparisons, and integer complex exponentiation that
// internal/octypes/value's Number relies on for equality and formatting.
// Ported from the original C implementation's OCMath.c.
package mathutil

import "math"

const (
	doubleLooseEps = 1e-8
	floatLooseEps  = 1.2e-6 // a bit above 1e-6 to cover ULP rounding
)

// ComparisonResult mirrors the original OCComparisonResult enum.
type ComparisonResult int

const (
	LessThan ComparisonResult = iota - 1
	EqualTo
	GreaterThan
)

func almostEqual2sComplementFloat(a, b float32, maxUlps int32) bool {
	ai := int32(math.Float32bits(a))
	if ai < 0 {
		ai = math.MinInt32 - ai
	}
	bi := int32(math.Float32bits(b))
	if bi < 0 {
		bi = math.MinInt32 - bi
	}
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d <= maxUlps
}

func almostEqual2sComplementDouble(a, b float64, maxUlps int64) bool {
	ai := int64(math.Float64bits(a))
	if ai < 0 {
		ai = math.MinInt64 - ai
	}
	bi := int64(math.Float64bits(b))
	if bi < 0 {
		bi = math.MinInt64 - bi
	}
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d <= maxUlps
}

// CompareFloat32 performs a strict ULP-tolerant comparison (8 ULPs), the
// same tolerance OCCompareFloatValues used.
func CompareFloat32(a, b float32) ComparisonResult {
	if almostEqual2sComplementFloat(a, b, 8) {
		return EqualTo
	}
	if a > b {
		return GreaterThan
	}
	return LessThan
}

// CompareFloat64 performs a strict ULP-tolerant comparison (14 ULPs), the
// same tolerance OCCompareDoubleValues used.
func CompareFloat64(a, b float64) ComparisonResult {
	if almostEqual2sComplementDouble(a, b, 14) {
		return EqualTo
	}
	if a > b {
		return GreaterThan
	}
	return LessThan
}

// Float32Equal reports whether a and b compare equal under CompareFloat32.
func Float32Equal(a, b float32) bool { return CompareFloat32(a, b) == EqualTo }

// Float64Equal reports whether a and b compare equal under CompareFloat64.
func Float64Equal(a, b float64) bool { return CompareFloat64(a, b) == EqualTo }

// CompareFloat32Loose compares with a fixed absolute epsilon rather than a
// ULP count; used where two computed floats should match "closely enough"
// rather than bit-for-bit (e.g. numeric-container round-trips through
// double precision).
func CompareFloat32Loose(a, b float32) ComparisonResult {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff <= floatLooseEps {
		return EqualTo
	}
	if a > b {
		return GreaterThan
	}
	return LessThan
}

// CompareFloat64Loose is CompareFloat32Loose's double-precision counterpart.
func CompareFloat64Loose(a, b float64) ComparisonResult {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff <= doubleLooseEps {
		return EqualTo
	}
	if a > b {
		return GreaterThan
	}
	return LessThan
}

// RaiseToIntegerPower raises a complex base to an integer power by repeated
// multiplication (not cmplx.Pow's general real-exponent path), matching the
// original raise_to_integer_power's exact semantics including negative
// exponents via 1/x.
func RaiseToIntegerPower(x complex128, power int64) complex128 {
	if power == 0 {
		return complex(1, 0)
	}
	positive := power > 0
	count := power
	base := x
	if !positive {
		count = -power
		base = complex(1, 0) / x
	}
	result := complex(1, 0)
	for i := int64(0); i < count; i++ {
		result *= base
	}
	if math.IsNaN(real(result)) {
		return complex(math.NaN(), imag(result))
	}
	return result
}
