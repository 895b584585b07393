package lupix

import "math"
import "strconv"

// A length in physical pixels, stored as a fixed point number with two
// fractional bits (fourths of a pixel). The underlying representation
// is an int32, so pixel values can be added, subtracted and compared
// directly with Go operators; multiplication and division have to go
// through [Px.Mul] and [Px.Div] instead, which rescale the result.
//
// Fourths of a pixel are enough for subpixel layout work while keeping
// a ±2^29 whole pixel range, far beyond any real surface size.
type Px int32

// Returns the given amount of whole pixels as a [Px]. Amounts beyond
// the representable whole range saturate.
func NewPx(pixels int32) Px {
	return Px(satInt32(int64(pixels) * pxScale))
}

// Returns the closest representable [Px] for the given value,
// saturating at the type bounds. NaN maps to zero.
func NewPxFloat(pixels float64) Px {
	return Px(floatToRaw(pixels, pxScale))
}

// Returns the value rounded to whole pixels, halves up.
func (self Px) ToInt() int32 {
	return int32(roundToScale(int64(self), pxScale))
}

// Returns the value rounded down to whole pixels.
func (self Px) ToIntFloor() int32 {
	return int32(self >> 2)
}

// Returns the value rounded up to whole pixels.
func (self Px) ToIntCeil() int32 {
	return int32(floorDiv(int64(self)+pxScale-1, pxScale))
}

// Returns the value as a float64. The conversion is exact.
func (self Px) ToFloat64() float64 {
	return float64(self) / pxScale
}

// Returns the value as a float32. The conversion is exact.
func (self Px) ToFloat32() float32 {
	return float32(self) / pxScale
}

// Returns whether the value has no fractional part.
func (self Px) IsWhole() bool { return self%pxScale == 0 }

// Returns the fractional part of the value, sign included.
func (self Px) Fract() Px { return self % pxScale }

func (self Px) Mul(multiplier Px) Px {
	mx64 := int64(self) * int64(multiplier)
	return Px(satInt32((mx64 + pxScale/2) >> 2))
}

// Division by zero is outside the documented input domain.
func (self Px) Div(divisor Px) Px {
	return Px(satInt32(roundRatio(int64(self)*pxScale, int64(divisor))))
}

// Returns the absolute value.
func (self Px) Abs() Px {
	if self >= 0 { return self }
	return Px(satInt32(-int64(self)))
}

// Returns the negated value. Negation of [MinPx] saturates to [MaxPx].
func (self Px) Neg() Px {
	return Px(satInt32(-int64(self)))
}

// Returns the square root of the value, rounded to the nearest
// representable step. Negative inputs map to zero.
func (self Px) Sqrt() Px {
	if self <= 0 { return 0 }
	return Px(floatToRaw(math.Sqrt(self.ToFloat64()), pxScale))
}

// Returns the value raised to the given power through repeated
// multiplication, saturating on overflow. Pow(0) is one pixel.
func (self Px) Pow(exponent uint8) Px {
	result := OnePx
	for i := uint8(0); i < exponent; i++ {
		result = result.Mul(self)
	}
	return result
}

// Returns the value as a [UPx], with negatives saturating to zero. Use
// [Px.CheckedUPx] to detect the saturation instead.
func (self Px) ToUPx() UPx {
	if self < 0 { return 0 }
	return UPx(self)
}

// Returns the value as a [UPx] and whether the conversion was exact.
// Negative values report false.
func (self Px) CheckedUPx() (UPx, bool) {
	if self < 0 { return 0, false }
	return UPx(self), true
}

// Returns the value converted to logical pixels at the given device
// scale (physical pixels per logical pixel), saturating at the [Lp]
// bounds. The scale must be positive.
func (self Px) ToLp(scale Fraction) Lp {
	num := int64(self) * lpScale * int64(scale.denominator)
	den := int64(scale.numerator) * pxScale
	return Lp(satInt32(roundRatio(num, den)))
}

// Returns a textual representation of the value (e.g.: "2.5").
func (self Px) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
