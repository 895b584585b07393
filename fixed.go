package lupix

import "golang.org/x/image/math/fixed"

// Interop with the 26.6 fixed point format used throughout
// [golang.org/x/image] and most of the Go font stack. Quarters and
// 64ths are both powers of two, so the conversions are plain shifts;
// only the Int26_6 -> Px direction can lose the four extra fractional
// bits, which are rounded half up.

// Converts a [Px] value to its fixed.Int26_6 representation. The
// conversion is exact unless the value exceeds the 26 bit whole range,
// in which case it saturates.
func (self Px) ToFixed() fixed.Int26_6 {
	return fixed.Int26_6(satInt32(int64(self) << 4))
}

// Converts a fixed.Int26_6 value to the nearest [Px], rounding the
// excess fractional precision half up.
func FromFixed(value fixed.Int26_6) Px {
	return Px(roundToScale(int64(value), 16))
}
