package lupix

import "testing"
import "math"

func TestNewFraction(t *testing.T) {
	tests := []struct {
		inNum int16
		inDen int16
		out   Fraction
	}{
		{0, 1, Fraction{0, 1}}, {0, 7, Fraction{0, 1}},
		{1, 1, Fraction{1, 1}}, {2, 6, Fraction{1, 3}},
		{6, 2, Fraction{3, 1}}, {9, 12, Fraction{3, 4}},
		{1, -3, Fraction{-1, 3}}, {-1, -3, Fraction{1, 3}},
		{-2, 6, Fraction{-1, 3}}, {100, 10, Fraction{10, 1}},
		{32767, 1, Fraction{32767, 1}},
		{-32768, 1, Fraction{-32767, 1}}, // numerator clamp
		{30030, 2310, Fraction{13, 1}},
	}

	for i, test := range tests {
		out := NewFraction(test.inNum, test.inDen)
		if out != test.out {
			str := "test #%d: in (%d, %d) expected out %s, but got %s"
			t.Fatalf(str, i, test.inNum, test.inDen, test.out, out)
		}
	}
}

func TestFractionAddSub(t *testing.T) {
	tests := []struct {
		a   Fraction
		b   Fraction
		sum Fraction
	}{
		{NewFraction(1, 3), NewFraction(1, 3), Fraction{2, 3}},
		{NewFraction(2, 3), NewFraction(1, 3), Fraction{1, 1}},
		{NewFraction(1, 2), NewFraction(1, 3), Fraction{5, 6}},
		{NewFraction(1, 4), NewFraction(1, 6), Fraction{5, 12}},
		{NewFraction(-1, 2), NewFraction(1, 2), Fraction{0, 1}},
		{NewFraction(7, 1), NewFraction(-9, 1), Fraction{-2, 1}},
	}

	for i, test := range tests {
		sum := test.a.Add(test.b)
		if sum != test.sum {
			str := "test #%d: %s + %s expected %s, but got %s"
			t.Fatalf(str, i, test.a, test.b, test.sum, sum)
		}
		diff := sum.Sub(test.b)
		if diff != test.a {
			str := "test #%d: %s - %s expected %s, but got %s"
			t.Fatalf(str, i, sum, test.b, test.a, diff)
		}
	}
}

func TestFractionThirds(t *testing.T) {
	third := NewFraction(1, 3)
	whole := third.Add(third).Add(third)
	if whole != FractionOne {
		t.Fatalf("1/3 + 1/3 + 1/3 expected 1/1, but got %s", whole)
	}
}

// Sums whose lowest common denominator exceeds the compact range have
// to settle for the closest representable fraction.
func TestFractionLossy(t *testing.T) {
	sum := NewFraction(1, 32719).Add(NewFraction(1, 32749))
	if sum != NewFraction(2, 32749) {
		t.Fatalf("expected 2/32749, but got %s", sum)
	}

	negSum := NewFraction(-1, 32719).Add(NewFraction(-1, 32749))
	if negSum != NewFraction(-2, 32749) {
		t.Fatalf("expected -2/32749, but got %s", negSum)
	}

	// the fallback result is not guaranteed to be in lowest terms
	near := NewFraction(1, 1000).Add(NewFraction(1, 1001))
	if (near != Fraction{54, 27054}) {
		t.Fatalf("expected 54/27054, but got %s", near)
	}

	// differences too tiny to approximate settle at the precision floor
	tiny := NewFraction(1, 32749).Sub(NewFraction(1, 32719))
	if tiny.Numerator() != -32767 || tiny.Denominator() != 32767 {
		t.Fatalf("expected -32767/32767, but got %s", tiny)
	}
}

func TestFractionMulDiv(t *testing.T) {
	tests := []struct {
		a   Fraction
		b   Fraction
		out Fraction
	}{
		{NewFraction(2, 3), NewFraction(3, 4), Fraction{1, 2}},
		{NewFraction(1, 2), NewFraction(1, 2), Fraction{1, 4}},
		{NewFraction(-1, 2), NewFraction(1, 2), Fraction{-1, 4}},
		{NewFraction(5, 1), NewFraction(0, 1), Fraction{0, 1}},
		{NewFraction(355, 113), NewFraction(113, 355), Fraction{1, 1}},
	}

	for i, test := range tests {
		out := test.a.Mul(test.b)
		if out != test.out {
			str := "test #%d: %s * %s expected %s, but got %s"
			t.Fatalf(str, i, test.a, test.b, test.out, out)
		}
	}

	quot := NewFraction(2, 3).Div(NewFraction(2, 1))
	if quot != NewFraction(1, 3) {
		t.Fatalf("2/3 / 2 expected 1/3, but got %s", quot)
	}
}

func TestFractionCmp(t *testing.T) {
	tests := []struct {
		a   Fraction
		b   Fraction
		out int
	}{
		{NewFraction(1, 3), NewFraction(2, 3), -1},
		{NewFraction(2, 3), NewFraction(1, 2), +1},
		{NewFraction(1, 3), NewFraction(1, 2), -1},
		{NewFraction(1, 2), NewFraction(2, 4), 0},
		{NewFraction(-1, 2), NewFraction(1, 2), -1},
		{NewFraction(0, 1), NewFraction(0, 5), 0},
		{NewFraction(7, 5), NewFraction(10, 7), -1},
	}

	for i, test := range tests {
		out := test.a.Cmp(test.b)
		if out != test.out {
			str := "test #%d: cmp(%s, %s) expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.out, out)
		}
		if test.b.Cmp(test.a) != -test.out {
			t.Fatalf("test #%d: cmp(%s, %s) not antisymmetric", i, test.b, test.a)
		}
	}
}

func TestFractionFromFloat32(t *testing.T) {
	tests := []struct {
		in  float32
		out Fraction
	}{
		{0, Fraction{0, 1}},
		{1, Fraction{1, 1}},
		{-1, Fraction{-1, 1}},
		{0.5, Fraction{1, 2}},
		{float32(1.0 / 3.0), Fraction{1, 3}},
		{math.Pi, FractionPi},
		{40000, FractionMax},
		{-40000, FractionMin},
		{float32(math.NaN()), FractionZero},
	}

	for i, test := range tests {
		out := FractionFromFloat32(test.in)
		if out != test.out {
			str := "test #%d: in %f expected out %s, but got %s"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestFractionCompound(t *testing.T) {
	tests := []struct {
		in    Fraction
		whole int16
		rest  Fraction
	}{
		{NewFraction(4, 3), 1, Fraction{1, 3}},
		{NewFraction(-4, 3), -1, Fraction{-1, 3}},
		{NewFraction(3, 3), 1, Fraction{0, 1}},
		{NewFraction(1, 3), 0, Fraction{1, 3}},
		{NewFraction(-7, 2), -3, Fraction{-1, 2}},
	}

	for i, test := range tests {
		whole, rest := test.in.Compound()
		if whole != test.whole || rest != test.rest {
			str := "test #%d: in %s expected (%d, %s), but got (%d, %s)"
			t.Fatalf(str, i, test.in, test.whole, test.rest, whole, rest)
		}
	}
}

func TestFractionRound(t *testing.T) {
	tests := []struct {
		in        Fraction
		whole     int16
		remainder Fraction
	}{
		{NewFraction(5, 3), 2, Fraction{-1, 3}},
		{NewFraction(-5, 3), -2, Fraction{1, 3}},
		{NewFraction(1, 2), 1, Fraction{-1, 2}},
		{NewFraction(1, 3), 0, Fraction{1, 3}},
		{NewFraction(7, 1), 7, Fraction{0, 1}},
	}

	for i, test := range tests {
		whole, remainder := test.in.RoundWithRemainder()
		if whole != test.whole || remainder != test.remainder {
			str := "test #%d: in %s expected (%d, %s), but got (%d, %s)"
			t.Fatalf(str, i, test.in, test.whole, test.remainder, whole, remainder)
		}
		if test.in.Round() != test.whole {
			t.Fatalf("test #%d: Round disagrees with RoundWithRemainder", i)
		}
		back := FractionFromInt(whole).Add(remainder)
		if back != test.in {
			str := "test #%d: %d + %s doesn't recover %s"
			t.Fatalf(str, i, whole, remainder, test.in)
		}
	}
}

func TestFractionUnaryOps(t *testing.T) {
	half := NewFraction(1, 2)
	if half.Neg() != NewFraction(-1, 2) { t.Fatal("bad Neg") }
	if half.Neg().Abs() != half { t.Fatal("bad Abs") }
	if half.Inverse() != NewFraction(2, 1) { t.Fatal("bad Inverse") }
	if NewFraction(-2, 3).Inverse() != NewFraction(-3, 2) { t.Fatal("bad negative Inverse") }
	if !FractionZero.IsZero() { t.Fatal("zero should be zero") }
	if FractionZero.IsPositive() || FractionZero.IsNegative() {
		t.Fatal("zero is neither positive nor negative")
	}
	if !half.IsPositive() || !half.Neg().IsNegative() {
		t.Fatal("bad sign predicates")
	}
}

func TestFractionFloats(t *testing.T) {
	if NewFraction(1, 2).ToFloat32() != 0.5 { t.Fatal("bad ToFloat32") }
	if NewFraction(-3, 4).ToFloat64() != -0.75 { t.Fatal("bad ToFloat64") }
	piErr := math.Abs(FractionPi.ToFloat64() - math.Pi)
	if piErr >= 2.67e-7 {
		t.Fatalf("pi approximation error %g out of bounds", piErr)
	}
}

func TestFractionString(t *testing.T) {
	tests := []struct {
		in  Fraction
		out string
	}{
		{NewFraction(1, 2), "1/2"},
		{NewFraction(-1, 2), "-1/2"},
		{NewFraction(0, 9), "0/1"},
		{FractionPi, "355/113"},
	}

	for i, test := range tests {
		out := test.in.String()
		if out != test.out {
			str := "test #%d: expected %q, but got %q"
			t.Fatalf(str, i, test.out, out)
		}
	}
}
