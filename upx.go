package lupix

import "math"
import "strconv"

// The unsigned counterpart of [Px]: a length in physical pixels stored
// as fourths of a pixel in a uint32. Useful for sizes and extents that
// can't meaningfully go negative. Subtraction through the underlying
// type wraps like any unsigned integer, so prefer comparing first or
// converting to [Px] when a difference might flip sign.
type UPx uint32

// Returns the given amount of whole pixels as a [UPx], saturating
// beyond the representable whole range.
func NewUPx(pixels uint32) UPx {
	value := uint64(pixels) * pxScale
	if value > math.MaxUint32 { return MaxUPx }
	return UPx(value)
}

// Returns the closest representable [UPx] for the given value. NaN and
// negative values map to zero; large values saturate.
func NewUPxFloat(pixels float64) UPx {
	if math.IsNaN(pixels) { return 0 }
	scaled := pixels*pxScale + 0.5
	if scaled <= 0 { return 0 }
	if scaled >= math.MaxUint32 { return MaxUPx }
	return UPx(math.Floor(scaled))
}

// Returns the value rounded to whole pixels, halves up.
func (self UPx) ToInt() uint32 {
	return uint32((uint64(self) + pxScale/2) / pxScale)
}

// Returns the value as a float64. The conversion is exact.
func (self UPx) ToFloat64() float64 {
	return float64(self) / pxScale
}

// Returns whether the value has no fractional part.
func (self UPx) IsWhole() bool { return self%pxScale == 0 }

// Returns the fractional part of the value.
func (self UPx) Fract() UPx { return self % pxScale }

func (self UPx) Mul(multiplier UPx) UPx {
	mx64 := uint64(self) * uint64(multiplier)
	result := (mx64 + pxScale/2) >> 2
	if result > math.MaxUint32 { return MaxUPx }
	return UPx(result)
}

// Division by zero is outside the documented input domain.
func (self UPx) Div(divisor UPx) UPx {
	result := (uint64(self)*pxScale + uint64(divisor)/2) / uint64(divisor)
	if result > math.MaxUint32 { return MaxUPx }
	return UPx(result)
}

// Returns the square root of the value, rounded to the nearest
// representable step.
func (self UPx) Sqrt() UPx {
	return NewUPxFloat(math.Sqrt(self.ToFloat64()))
}

// Returns the value raised to the given power through repeated
// multiplication, saturating on overflow. Pow(0) is one pixel.
func (self UPx) Pow(exponent uint8) UPx {
	result := OneUPx
	for i := uint8(0); i < exponent; i++ {
		result = result.Mul(self)
	}
	return result
}

// Returns the value as a [Px], saturating at [MaxPx]. Use
// [UPx.CheckedPx] to detect the saturation instead.
func (self UPx) ToPx() Px {
	if self > UPx(MaxPx) { return MaxPx }
	return Px(self)
}

// Returns the value as a [Px] and whether the conversion was exact.
// Values above [MaxPx] report false.
func (self UPx) CheckedPx() (Px, bool) {
	if self > UPx(MaxPx) { return MaxPx, false }
	return Px(self), true
}

// Returns the value converted to logical pixels at the given device
// scale (physical pixels per logical pixel), saturating at the [Lp]
// bounds. The scale must be positive.
func (self UPx) ToLp(scale Fraction) Lp {
	num := int64(self) * lpScale * int64(scale.denominator)
	den := int64(scale.numerator) * pxScale
	return Lp(satInt32(roundRatio(num, den)))
}

// Returns a textual representation of the value (e.g.: "2.5").
func (self UPx) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
