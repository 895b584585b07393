package lupix

import "time"
import "strconv"

// A direction measured in degrees, stored as a [Fraction] and kept
// within [0, 360) by every constructor and operation. Normalization
// works through repeated 360° shifts on the rational value itself, so
// angles that start from whole or fractional degrees stay exact:
// Degrees(361) equals Degrees(1), without any float round trip.
//
// Radian conversions go through [FractionPi] and inherit its 2.67e-7
// approximation error. Prefer degree-based construction when the
// source value allows it.
//
// The zero value of Angle is not valid; use Degrees(0) instead.
type Angle struct {
	degrees Fraction
}

var degrees360 = Fraction{360, 1}

// shifts the fraction into [0, 360) by whole turns
func clamp360(degrees Fraction) Fraction {
	if degrees.IsNegative() {
		for {
			degrees = degrees.Add(degrees360)
			if !degrees.IsNegative() { return degrees }
		}
	}
	for degrees.Cmp(degrees360) >= 0 {
		degrees = degrees.Sub(degrees360)
	}
	return degrees
}

// Returns the angle for a whole number of degrees.
func Degrees(degrees int16) Angle {
	for degrees < 0 { degrees += 360 }
	for degrees >= 360 { degrees -= 360 }
	return Angle{Fraction{degrees, 1}}
}

// Returns the angle for a fractional number of degrees.
func DegreesFraction(degrees Fraction) Angle {
	return Angle{clamp360(degrees)}
}

// Returns the angle closest to the given degrees value. See
// [FractionFromFloat32] for the conversion policy.
func DegreesFloat(degrees float32) Angle {
	return Angle{clamp360(FractionFromFloat32(degrees))}
}

// Returns the angle for a radians value given as a fraction of pi.
// Radians(FractionPi) is exactly 180°.
func Radians(radians Fraction) Angle {
	return Angle{clamp360(radians.Div(FractionPi).Mul(Fraction{180, 1}))}
}

// Returns the angle closest to the given radians value.
func RadiansFloat(radians float32) Angle {
	return Radians(FractionFromFloat32(radians))
}

// Returns the angle in degrees, within [0, 360).
func (self Angle) ToDegrees() Fraction { return self.degrees }

// Returns the angle in radians, going through [FractionPi].
func (self Angle) ToRadians() Fraction {
	return self.degrees.Div(Fraction{180, 1}).Mul(FractionPi)
}

// Returns the angle in radians as a float32.
func (self Angle) ToRadiansFloat() float32 {
	return self.ToRadians().ToFloat32()
}

// Returns whether the angle is exactly zero degrees.
func (self Angle) IsZero() bool { return self.degrees.IsZero() }

// Compares two angles, returning -1, 0 or +1. The comparison is over
// the normalized [0, 360) values, so 350° sorts after 10° even though
// both are ten degrees away from zero.
func (self Angle) Cmp(other Angle) int {
	return self.degrees.Cmp(other.degrees)
}

// Returns the sum of both angles, normalized.
func (self Angle) Add(other Angle) Angle {
	return Angle{clamp360(self.degrees.Add(other.degrees))}
}

// Returns the difference of both angles, normalized.
func (self Angle) Sub(other Angle) Angle {
	return Angle{clamp360(self.degrees.Sub(other.degrees))}
}

// Returns the angle mirrored around zero, normalized. Neg of 90° is
// 270°, and Neg of 0° remains 0°.
func (self Angle) Neg() Angle {
	return Angle{clamp360(self.degrees.Neg())}
}

// Returns the angle scaled by the given factor, normalized.
func (self Angle) Mul(factor Fraction) Angle {
	return Angle{clamp360(self.degrees.Mul(factor))}
}

// Returns the angle divided by the given factor, normalized.
func (self Angle) Div(factor Fraction) Angle {
	return Angle{clamp360(self.degrees.Div(factor))}
}

// Returns the angle scaled by the duration's length in seconds.
// Useful for constant-rate rotations: a 90° angle stepped by a 16ms
// frame advances by 90°·0.016.
func (self Angle) MulDuration(duration time.Duration) Angle {
	seconds := FractionFromFloat32(float32(duration.Seconds()))
	return self.Mul(seconds)
}

// Returns the sine of the angle, from the whole-degree table with
// fractional interpolation. Accuracy is typically within 1e-6 of the
// true value, degrading to around 4e-5 at the curvature extremes.
func (self Angle) Sin() Fraction {
	return lookupTable(self.degrees, sineTable[:])
}

// Returns the cosine of the angle. Same precision profile as
// [Angle.Sin].
func (self Angle) Cos() Fraction {
	return lookupTable(self.degrees, cosineTable[:])
}

// Returns the tangent of the angle. Near the 90° and 270° asymptotes
// the result saturates to the fraction range instead of growing
// without bound.
func (self Angle) Tan() Fraction {
	return lookupTable(self.degrees, tangentTable[:])
}

// Returns the angle in degrees with the fractional part expanded one
// decimal digit at a time, stopping once the remainder drops below a
// thousandth: "10°", "10.1°", "0.125°". Use [Angle.Format] for a fixed
// number of decimals.
func (self Angle) String() string {
	return self.expandDegrees(-1)
}

// Returns the angle in degrees with exactly the given number of
// decimal digits, unless the angle is whole: Format(3) of 1.1° is
// "1.100°", of 1° just "1°".
func (self Angle) Format(decimals int) string {
	return self.expandDegrees(decimals)
}

var fracThousandth = Fraction{1, 1000}
var fracTen = Fraction{10, 1}

func (self Angle) expandDegrees(decimals int) string {
	whole, fract := self.degrees.Compound()
	out := strconv.Itoa(int(whole))
	if !fract.IsZero() {
		if decimals > 0 {
			out += "."
			for i := 0; i < decimals; i++ {
				var digit int16
				digit, fract = fract.Mul(fracTen).Compound()
				out += string(rune('0' + digit))
			}
		} else if fract.Cmp(fracThousandth) > 0 {
			out += "."
			for {
				var digit int16
				digit, fract = fract.Mul(fracTen).Compound()
				out += string(rune('0' + digit))
				if fract.Cmp(fracThousandth) < 0 { break }
			}
		}
	}
	return out + "°"
}
