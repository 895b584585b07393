package lupix

// Interpolating table lookup. The whole part of the key selects the
// entry and the fractional part slides linearly towards the next one.
// Keys must fall within the table, fractional overflow at the last
// entry included (a key equal to the last index has no fractional part
// by construction).
func lookupTable(key Fraction, table []Fraction) Fraction {
	whole, fract := key.Compound()
	current := table[whole]
	if fract.IsZero() { return current }
	next := table[whole+1]
	return current.Add(next.Sub(current).Mul(fract))
}

// Arctangent over [-1, 1], where the table applies directly. The table
// spans [0, 1] at 1/64 steps, in radians; negative inputs mirror
// through the odd symmetry of arctangent before the angle
// normalization folds them into range.
func fastAtan(value Fraction) Angle {
	key := value.Mul(Fraction{arctanSubdivisions, 1})
	var radians Fraction
	if key.IsNegative() {
		radians = lookupTable(key.Neg(), arctanTable[:]).Neg()
	} else {
		radians = lookupTable(key, arctanTable[:])
	}
	return Radians(radians)
}

// Returns the arctangent of the fraction as an angle in [0, 360).
// Inputs beyond [-1, 1] go through the complementary identity
// atan(x) = 90° - atan(1/x), which maps them back into table range.
func (self Fraction) Atan() Angle {
	if self.Cmp(Fraction{-1, 1}) >= 0 && self.Cmp(FractionOne) <= 0 {
		return fastAtan(self)
	}
	complement := fastAtan(self.Inverse())
	if self.IsNegative() {
		return Degrees(-90).Sub(complement)
	}
	return Degrees(90).Sub(complement)
}

// Returns the angle of the vector (x, y) measured counterclockwise
// from the positive x axis, in [0, 360). The ratio's arctangent only
// covers two quadrants; the sign of x selects whether to shift the
// result by a half turn.
func Atan2(y, x Fraction) Angle {
	angle := y.Div(x).Atan()
	if x.IsNegative() { return Degrees(180).Add(angle) }
	return angle
}
