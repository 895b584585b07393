package lupix

import "math"
import "strconv"

// A bounded rational number for predictable integer-based math.
//
// A Fraction packs a signed 16 bit numerator and a positive 16 bit
// denominator into 32 bits of data. Arithmetic widens both operands to
// 32 bits, operates, and narrows back, reducing by trial division over
// a prime list. This prevents overflows, but not precision loss: adding
// fractions whose denominators are large mutually prime numbers can
// produce a denominator no 16 bit value can hold. When that happens the
// result is walked back into range through a deterministic lossy
// reduction (see [Fraction.Add] for the exact policy) instead of
// failing or wrapping around. For example:
//
//	NewFraction(1, 32719).Add(NewFraction(1, 32749)) == NewFraction(2, 32749)
//
// The true sum has denominator 1071514531; the approximation above is
// off by roughly 2.8e-8. In 2D graphics work, inputs that trigger the
// lossy path are rare outside radian manipulation.
//
// The zero value of Fraction is not valid; use [FractionZero] instead.
type Fraction struct {
	numerator   int16
	denominator int16
}

// The numerator range is kept symmetric so negation can't overflow.
const minNumerator = -math.MaxInt16

// Common fraction values. Treat these as constants.
var (
	FractionZero = Fraction{0, 1}
	FractionOne  = Fraction{1, 1}
	FractionMax  = Fraction{math.MaxInt16, 1}
	FractionMin  = Fraction{math.MinInt16, 1}

	// A fractional approximation of pi, accurate to within 2.67e-7.
	FractionPi = Fraction{355, 113}
)

// Returns the fraction numerator/denominator reduced to lowest terms.
// A negative denominator moves its sign to the numerator, and the
// numerator is clamped to -32767 so the range stays symmetric. A zero
// denominator is outside the documented input domain.
//
// The reduction divides out every shared prime factor below 1<<15,
// which is exhaustive for 16 bit operands.
func NewFraction(numerator, denominator int16) Fraction {
	if numerator < minNumerator { numerator = minNumerator }
	fraction := newMaybeReduced(numerator, denominator)
	num, den := reduceWide(int32(fraction.numerator), int32(fraction.denominator))
	return Fraction{int16(num), int16(den)}
}

// Returns a fraction for a whole number. The conversion is exact.
func FractionFromInt(value int16) Fraction {
	return Fraction{value, 1}
}

// Approximates a floating point value as a fraction by searching
// candidate denominators from 1 upwards and keeping the closest ratio,
// stopping early once the error drops within one float32 epsilon.
// Values beyond the numerator range clamp to [FractionMin] or
// [FractionMax]; NaN maps to [FractionZero].
//
// The search is linear, O(32767) in the worst case, so reserve it for
// construction boundaries rather than hot arithmetic.
func FractionFromFloat32(value float32) Fraction {
	if math.IsNaN(float64(value)) { return FractionZero }
	if value < -math.MaxInt16 { return FractionMin }
	if value > +math.MaxInt16 { return FractionMax }

	const epsilon = float32(1.1920929e-07) // math32 ulp of 1.0
	best := Fraction{0, 0}
	bestDiff := float32(math.MaxFloat32)
	for denominator := int32(1); denominator <= math.MaxInt16; denominator++ {
		product := float64(float32(denominator) * value)
		numerator := satInt16(int64(math.Floor(math.Abs(product) + 0.5)))
		if product < 0 { numerator = -numerator }
		ratio := Fraction{numerator, int16(denominator)}
		delta := ratio.ToFloat32() - value
		if delta < 0 { delta = -delta }
		if delta < bestDiff {
			best = ratio
			bestDiff = delta
			if delta <= epsilon { break }
		}
	}
	return best
}

// newMaybeReduced normalizes the denominator sign without reducing.
func newMaybeReduced(numerator, denominator int16) Fraction {
	if denominator < 0 {
		numerator = satNegInt16(numerator)
		denominator = satNegInt16(denominator)
	}
	return Fraction{numerator, denominator}
}

func satNegInt16(value int16) int16 {
	if value == math.MinInt16 { return math.MaxInt16 }
	return -value
}

// Returns the numerator of the fraction.
func (self Fraction) Numerator() int16 { return self.numerator }

// Returns the denominator of the fraction.
func (self Fraction) Denominator() int16 { return self.denominator }

// Returns whether the fraction equals zero.
func (self Fraction) IsZero() bool { return self.numerator == 0 }

// Returns whether the fraction is greater than zero.
// Zero itself is neither positive nor negative.
func (self Fraction) IsPositive() bool { return self.numerator > 0 }

// Returns whether the fraction is less than zero.
// Zero itself is neither positive nor negative.
func (self Fraction) IsNegative() bool { return self.numerator < 0 }

// Returns the fraction as a float32.
func (self Fraction) ToFloat32() float32 {
	return float32(self.numerator) / float32(self.denominator)
}

// Returns the fraction as a float64.
func (self Fraction) ToFloat64() float64 {
	return float64(self.numerator) / float64(self.denominator)
}

// Splits the fraction into its whole part and a proper remainder with
// the same sign. Adding both back together recovers the original value:
//
//	Compound of  4/3 is ( 1,  1/3)
//	Compound of -4/3 is (-1, -1/3)
func (self Fraction) Compound() (int16, Fraction) {
	whole := self.numerator / self.denominator
	rest := self.numerator % self.denominator
	return whole, newMaybeReduced(rest, self.denominator)
}

// Rounds the fraction to the nearest whole number, halves away from
// zero.
func (self Fraction) Round() int16 {
	whole, _ := self.RoundWithRemainder()
	return whole
}

// Rounds the fraction to the nearest whole number and also returns the
// amount that was rounded away. Adding the remainder to the whole
// number reconstructs the original fraction.
func (self Fraction) RoundWithRemainder() (int16, Fraction) {
	whole, fraction := self.Compound()
	halfDenominator := (fraction.denominator + 1) / 2
	if fraction.numerator >= halfDenominator {
		return whole + 1, FractionFromInt(1).Sub(fraction).Neg()
	}
	if fraction.numerator <= -halfDenominator {
		return whole - 1, FractionFromInt(-1).Sub(fraction).Neg()
	}
	return whole, fraction
}

// Returns the negated fraction.
func (self Fraction) Neg() Fraction {
	return Fraction{-self.numerator, self.denominator}
}

// Returns the absolute value of the fraction.
func (self Fraction) Abs() Fraction {
	if self.numerator >= 0 { return self }
	return Fraction{-self.numerator, self.denominator}
}

// Returns the multiplicative inverse of the fraction. The inverse of
// zero is outside the documented input domain.
func (self Fraction) Inverse() Fraction {
	if self.numerator >= 0 {
		return Fraction{self.denominator, self.numerator}
	}
	return Fraction{-self.denominator, -self.numerator}
}

// Returns the sum of both fractions.
//
// The operands are first aligned to their lowest common denominator by
// merging the prime factor streams of both denominators (never by
// multiplying the denominators together, which would overflow far more
// often). The 32 bit result is then reduced; if it still doesn't fit
// the compact form, the largest prime that divides both components
// closely enough to bring them back into range is divided out, keeping
// the candidate with the smallest combined remainder. The outcome is a
// deterministic bounded approximation, never a wraparound.
func (self Fraction) Add(other Fraction) Fraction {
	a, b := alignDenominators(self, other)
	return compactFraction(a.numerator+b.numerator, a.denominator)
}

// Returns the difference of both fractions. Same precision policy as
// [Fraction.Add].
func (self Fraction) Sub(other Fraction) Fraction {
	a, b := alignDenominators(self, other)
	return compactFraction(a.numerator-b.numerator, a.denominator)
}

// Returns the product of both fractions. Same precision policy as
// [Fraction.Add].
func (self Fraction) Mul(other Fraction) Fraction {
	num := int32(self.numerator) * int32(other.numerator)
	den := int32(self.denominator) * int32(other.denominator)
	return compactFraction(num, den)
}

// Returns the quotient of both fractions, computed as a multiplication
// by the divisor's inverse. Division by zero is outside the documented
// input domain.
func (self Fraction) Div(other Fraction) Fraction {
	return self.Mul(other.Inverse())
}

// Compares two fractions, returning -1, 0 or +1. Matching denominators
// and matching numerators compare directly; anything else goes through
// lowest common denominator alignment first.
func (self Fraction) Cmp(other Fraction) int {
	if self.denominator == other.denominator {
		return cmpInt32(int32(self.numerator), int32(other.numerator))
	}
	if self.numerator == other.numerator {
		// numerators match, so the smaller denominator wins
		return cmpInt32(int32(other.denominator), int32(self.denominator))
	}
	a, b := alignDenominators(self, other)
	return cmpInt32(a.numerator, b.numerator)
}

func cmpInt32(a, b int32) int {
	if a < b { return -1 }
	if a > b { return +1 }
	return 0
}

// Returns the fraction in "numerator/denominator" form.
func (self Fraction) String() string {
	num := strconv.Itoa(int(self.numerator))
	den := strconv.Itoa(int(self.denominator))
	return num + "/" + den
}
