package lupix

import "testing"

func TestLpRoundTrip(t *testing.T) {
	values := []int32{-100, -1, 0, 1, 7, 96, 5000, 123456}
	for _, value := range values {
		if NewLp(value).ToInt() != value {
			t.Fatalf("value %d doesn't round-trip", value)
		}
	}
}

func TestLpPhysicalUnits(t *testing.T) {
	if LpInches(1) != 182880 { t.Fatalf("one inch expected 182880 units, got %d", LpInches(1)) }
	if LpInches(1) != NewLp(96) { t.Fatal("one inch should be 96 logical pixels") }
	if LpPoints(1) != 2540 { t.Fatalf("one point expected 2540 units, got %d", LpPoints(1)) }
	if LpPoints(72) != LpInches(1) { t.Fatal("72 points should make an inch") }
	if LpMm(1) != 7200 { t.Fatalf("one millimeter expected 7200 units, got %d", LpMm(1)) }
	if LpCm(1) != LpMm(10) { t.Fatal("a centimeter should be ten millimeters") }
	if LpMm(254) != LpInches(10) { t.Fatal("254 mm should be exactly 10 inches") }
	if LpInchesFloat(0.5) != 91440 { t.Fatal("bad fractional inches") }
	if LpPointsFloat(0.5) != 1270 { t.Fatal("bad fractional points") }
}

func TestLpToPx(t *testing.T) {
	one := FractionOne
	tests := []struct {
		in    Lp
		scale Fraction
		out   Px
	}{
		{LpInches(1), one, NewPx(96)},
		{NewLp(10), NewFraction(2, 1), NewPx(20)},
		{NewLp(10), NewFraction(3, 2), NewPx(15)},
		{NewLp(-10), one, NewPx(-10)},
		{0, one, 0},
	}

	for i, test := range tests {
		out := test.in.ToPx(test.scale)
		if out != test.out {
			str := "test #%d: %f lp at scale %s expected %f px, but got %f"
			t.Fatalf(str, i, test.in.ToFloat64(), test.scale, test.out.ToFloat64(), out.ToFloat64())
		}
		back := out.ToLp(test.scale)
		if back != test.in {
			str := "test #%d: %f px at scale %s doesn't convert back to %f lp (got %f)"
			t.Fatalf(str, i, out.ToFloat64(), test.scale, test.in.ToFloat64(), back.ToFloat64())
		}
	}
}

func TestLpToUPx(t *testing.T) {
	if LpInches(1).ToUPx(FractionOne) != NewUPx(96) { t.Fatal("bad inch conversion") }
	if NewLp(-10).ToUPx(FractionOne) != 0 { t.Fatal("negative should clamp to zero") }
	if NewUPx(96).ToLp(FractionOne) != LpInches(1) { t.Fatal("bad inverse conversion") }
}

func TestLpMulDiv(t *testing.T) {
	if NewLp(3).Mul(NewLp(2)) != NewLp(6) { t.Fatal("bad 3 * 2") }
	if NewLp(-3).Mul(NewLp(2)) != NewLp(-6) { t.Fatal("bad -3 * 2") }
	if NewLp(8).Div(NewLp(2)) != NewLp(4) { t.Fatal("bad 8 / 2") }
	if NewLp(7).Div(NewLp(2)) != 6668 { t.Fatal("7 / 2 expected 3.5, rounded up to the next unit") }
	if NewLp(1).Div(NewLp(3)).Mul(NewLp(3)).ToInt() != 1 {
		t.Fatal("1/3 * 3 should round back to 1")
	}
}

func TestLpSqrtPowAbs(t *testing.T) {
	if NewLp(9).Sqrt() != NewLp(3) { t.Fatal("bad sqrt(9)") }
	if NewLp(-4).Sqrt() != 0 { t.Fatal("negative sqrt should clamp to zero") }
	if NewLp(2).Pow(3) != NewLp(8) { t.Fatal("bad 2^3") }
	if NewLp(5).Pow(0) != OneLp { t.Fatal("x^0 should be one") }
	if NewLp(-5).Abs() != NewLp(5) { t.Fatal("bad Abs") }
	if NewLp(5).Neg() != NewLp(-5) { t.Fatal("bad Neg") }
	if MinLp.Neg() != MaxLp { t.Fatal("negating the minimum should saturate") }
}

func TestLpSaturation(t *testing.T) {
	if NewLp(MaxWholeLp+1) != MaxLp { t.Fatal("whole overflow should saturate") }
	if NewLp(MinWholeLp-1) != MinLp { t.Fatal("whole underflow should saturate") }
	if NewLpFloat(1e9) != MaxLp { t.Fatal("float overflow should saturate") }
	if MaxLp.ToPx(NewFraction(2, 1)) != MaxPx { t.Fatal("upscale overflow should saturate") }
}
