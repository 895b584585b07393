package lupix

import "math"

// Numeric helpers shared by the fraction and unit code. Rounding is
// always done with integer arithmetic; the only floats that appear
// here are the ones callers hand us at conversion boundaries.

// Floor division, as opposed to Go's truncated division. Required so
// that half-up rounding keeps working left of zero.
func floorDiv(a, b int64) int64 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) { quotient -= 1 }
	return quotient
}

// Rounds num/den to the nearest integer, ties away from the floor
// (round half up). The divisor's sign is normalized first.
func roundRatio(num, den int64) int64 {
	if den < 0 { num, den = -num, -den }
	return floorDiv(num+den/2, den)
}

// Converts an internal fixed point representation back to natural
// units, rounding halves up.
func roundToScale(raw int64, scale int64) int64 {
	return floorDiv(raw+scale/2, scale)
}

func satInt16(value int64) int16 {
	if value > math.MaxInt16 { return math.MaxInt16 }
	if value < math.MinInt16 { return math.MinInt16 }
	return int16(value)
}

func satInt32(value int64) int32 {
	if value > math.MaxInt32 { return math.MaxInt32 }
	if value < math.MinInt32 { return math.MinInt32 }
	return int32(value)
}

func satUint32(value int64) uint32 {
	if value > math.MaxUint32 { return math.MaxUint32 }
	if value < 0 { return 0 }
	return uint32(value)
}

// Float to fixed point, rounding to the nearest internal step with
// ties up, saturating at the int32 bounds. NaN maps to zero.
func floatToRaw(value float64, scale int64) int32 {
	if math.IsNaN(value) { return 0 }
	scaled := value * float64(scale)
	if scaled >= math.MaxInt32 { return math.MaxInt32 }
	if scaled <= math.MinInt32 { return math.MinInt32 }
	return int32(math.Floor(scaled + 0.5))
}
