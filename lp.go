package lupix

import "math"
import "strconv"

// A device-independent length in logical pixels, stored as 1905ths of
// a logical pixel in an int32. The 1905 scale makes the common
// physical units exact: one inch is 96 logical pixels (182880 internal
// units), which divides evenly into 72 points and 254 tenths of a
// millimeter, so [LpPoints] and [LpMm] never round.
//
// Logical pixels only turn into something drawable through [Lp.ToPx]
// or [Lp.ToUPx] with the device scale factor.
type Lp int32

// Returns the given amount of logical pixels as an [Lp], saturating
// beyond the representable whole range.
func NewLp(pixels int32) Lp {
	return Lp(satInt32(int64(pixels) * lpScale))
}

// Returns the closest representable [Lp] for the given value,
// saturating at the type bounds. NaN maps to zero.
func NewLpFloat(pixels float64) Lp {
	return Lp(floatToRaw(pixels, lpScale))
}

// Returns the given length in inches as an [Lp]. One inch is 96
// logical pixels.
func LpInches(inches int32) Lp {
	return Lp(satInt32(int64(inches) * lpPerInch))
}

// The float variant of [LpInches].
func LpInchesFloat(inches float64) Lp {
	return Lp(floatToRaw(inches, lpPerInch))
}

// Returns the given length in typographic points (1/72 inch) as an
// [Lp]. The conversion is exact.
func LpPoints(points int32) Lp {
	return Lp(satInt32(int64(points) * (lpPerInch / 72)))
}

// The float variant of [LpPoints].
func LpPointsFloat(points float64) Lp {
	return Lp(floatToRaw(points, lpPerInch/72))
}

// Returns the given length in millimeters as an [Lp]. The conversion
// is exact.
func LpMm(millimeters int32) Lp {
	return Lp(satInt32(int64(millimeters) * (lpPerInch * 10 / 254)))
}

// The float variant of [LpMm].
func LpMmFloat(millimeters float64) Lp {
	return Lp(floatToRaw(millimeters, lpPerInch*10/254))
}

// Returns the given length in centimeters as an [Lp]. The conversion
// is exact.
func LpCm(centimeters int32) Lp {
	return Lp(satInt32(int64(centimeters) * (lpPerInch * 100 / 254)))
}

// The float variant of [LpCm].
func LpCmFloat(centimeters float64) Lp {
	return Lp(floatToRaw(centimeters, lpPerInch*100/254))
}

// Returns the value rounded to whole logical pixels, halves up.
func (self Lp) ToInt() int32 {
	return int32(roundToScale(int64(self), lpScale))
}

// Returns the value as a float64. The conversion is exact.
func (self Lp) ToFloat64() float64 {
	return float64(self) / lpScale
}

// Returns whether the value has no fractional part.
func (self Lp) IsWhole() bool { return self%lpScale == 0 }

// Returns the fractional part of the value, sign included.
func (self Lp) Fract() Lp { return self % lpScale }

func (self Lp) Mul(multiplier Lp) Lp {
	mx64 := int64(self) * int64(multiplier)
	return Lp(satInt32(roundToScale(mx64, lpScale)))
}

// Division by zero is outside the documented input domain.
func (self Lp) Div(divisor Lp) Lp {
	return Lp(satInt32(roundRatio(int64(self)*lpScale, int64(divisor))))
}

// Returns the absolute value.
func (self Lp) Abs() Lp {
	if self >= 0 { return self }
	return Lp(satInt32(-int64(self)))
}

// Returns the negated value. Negation of [MinLp] saturates to [MaxLp].
func (self Lp) Neg() Lp {
	return Lp(satInt32(-int64(self)))
}

// Returns the square root of the value, rounded to the nearest
// representable step. Negative inputs map to zero.
func (self Lp) Sqrt() Lp {
	if self <= 0 { return 0 }
	return Lp(floatToRaw(math.Sqrt(self.ToFloat64()), lpScale))
}

// Returns the value raised to the given power through repeated
// multiplication, saturating on overflow. Pow(0) is one logical pixel.
func (self Lp) Pow(exponent uint8) Lp {
	result := OneLp
	for i := uint8(0); i < exponent; i++ {
		result = result.Mul(self)
	}
	return result
}

// Returns the value converted to physical pixels at the given device
// scale (physical pixels per logical pixel), saturating at the [Px]
// bounds. The scale must be positive. At scale one, an inch of logical
// pixels becomes exactly 96 physical pixels.
func (self Lp) ToPx(scale Fraction) Px {
	num := int64(self) * pxScale * int64(scale.numerator)
	den := int64(scale.denominator) * lpScale
	return Px(satInt32(roundRatio(num, den)))
}

// Returns the value converted to physical pixels at the given device
// scale, with negative results saturating to zero.
func (self Lp) ToUPx(scale Fraction) UPx {
	num := int64(self) * pxScale * int64(scale.numerator)
	den := int64(scale.denominator) * lpScale
	return UPx(satUint32(roundRatio(num, den)))
}

// Returns a textual representation of the value (e.g.: "1.5").
func (self Lp) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
