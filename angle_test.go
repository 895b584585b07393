package lupix

import "testing"
import "math"
import "time"

func TestDegreesNormalization(t *testing.T) {
	tests := []struct {
		in  int16
		out Angle
	}{
		{0, Angle{Fraction{0, 1}}},
		{1, Angle{Fraction{1, 1}}},
		{359, Angle{Fraction{359, 1}}},
		{360, Angle{Fraction{0, 1}}},
		{361, Angle{Fraction{1, 1}}},
		{720, Angle{Fraction{0, 1}}},
		{-1, Angle{Fraction{359, 1}}},
		{-360, Angle{Fraction{0, 1}}},
		{-725, Angle{Fraction{355, 1}}},
		{32400, Angle{Fraction{0, 1}}},
	}

	for i, test := range tests {
		out := Degrees(test.in)
		if out != test.out {
			str := "test #%d: in %d expected %s, but got %s"
			t.Fatalf(str, i, test.in, test.out.degrees, out.degrees)
		}
	}
}

func TestDegreesFraction(t *testing.T) {
	tests := []struct {
		in  Fraction
		out Fraction
	}{
		{NewFraction(725, 2), Fraction{5, 2}},
		{NewFraction(-1, 2), Fraction{719, 2}},
		{NewFraction(360, 1), Fraction{0, 1}},
		{NewFraction(90, 1), Fraction{90, 1}},
	}

	for i, test := range tests {
		out := DegreesFraction(test.in)
		if out.ToDegrees() != test.out {
			str := "test #%d: in %s expected %s, but got %s"
			t.Fatalf(str, i, test.in, test.out, out.ToDegrees())
		}
	}
}

func TestRadians(t *testing.T) {
	if Radians(FractionPi) != Degrees(180) {
		t.Fatalf("pi radians expected 180 degrees, got %s", Radians(FractionPi))
	}
	if Degrees(180).ToRadians() != FractionPi {
		t.Fatalf("180 degrees expected pi radians, got %s", Degrees(180).ToRadians())
	}
	if RadiansFloat(float32(math.Pi/2)) != Degrees(90) {
		t.Fatalf("pi/2 radians expected 90 degrees")
	}
	radians := Degrees(90).ToRadiansFloat()
	if math.Abs(float64(radians)-math.Pi/2) > 1e-6 {
		t.Fatalf("90 degrees in radians expected ~pi/2, got %f", radians)
	}
}

func TestAngleArithmetic(t *testing.T) {
	if Degrees(350).Add(Degrees(20)) != Degrees(10) { t.Fatal("bad wrapping Add") }
	if Degrees(10).Sub(Degrees(20)) != Degrees(350) { t.Fatal("bad wrapping Sub") }
	if Degrees(90).Neg() != Degrees(270) { t.Fatal("bad Neg") }
	if Degrees(0).Neg() != Degrees(0) { t.Fatal("Neg of zero should stay zero") }
	if Degrees(90).Mul(NewFraction(3, 1)) != Degrees(270) { t.Fatal("bad Mul") }
	if Degrees(270).Div(NewFraction(3, 1)) != Degrees(90) { t.Fatal("bad Div") }
	if Degrees(90).Cmp(Degrees(270)) != -1 { t.Fatal("bad Cmp") }
	if !Degrees(360).IsZero() { t.Fatal("360 should normalize to zero") }
}

func TestAngleMulDuration(t *testing.T) {
	half := Degrees(90).MulDuration(500 * time.Millisecond)
	if half != Degrees(45) {
		t.Fatalf("90 degrees over half a second expected 45, got %s", half)
	}
	if Degrees(45).MulDuration(2*time.Second) != Degrees(90) {
		t.Fatal("bad two second scaling")
	}
}

func TestAngleSinCos(t *testing.T) {
	tests := []struct {
		in  int16
		sin Fraction
	}{
		{0, Fraction{0, 1}},
		{30, Fraction{1, 2}},
		{90, Fraction{1, 1}},
		{180, Fraction{0, 1}},
		{270, Fraction{-1, 1}},
	}

	for i, test := range tests {
		sin := Degrees(test.in).Sin()
		if sin != test.sin {
			str := "test #%d: sin(%d) expected %s, but got %s"
			t.Fatalf(str, i, test.in, test.sin, sin)
		}
	}

	if Degrees(60).Cos() != NewFraction(1, 2) { t.Fatal("bad cos(60)") }
	if Degrees(0).Cos() != FractionOne { t.Fatal("bad cos(0)") }
	if Degrees(45).Tan() != FractionOne { t.Fatal("bad tan(45)") }
	if Degrees(90).Tan() != FractionMax { t.Fatal("tan(90) should saturate") }
}

func TestAngleSinAccuracy(t *testing.T) {
	degrees := []float64{0, 0.25, 0.5, 0.75, 30, 45, 90, 179.5, 180, 270, 359, 359.25, 359.5, 359.75}
	for _, value := range degrees {
		got := DegreesFloat(float32(value)).Sin().ToFloat64()
		want := math.Sin(value * math.Pi / 180)
		if math.Abs(got-want) >= 1e-6 {
			t.Fatalf("sin(%f) expected ~%f, but got %f", value, want, got)
		}
	}
}

func TestAngleCosAccuracy(t *testing.T) {
	degrees := []float64{0, 60, 89.5, 90, 90.25, 180, 269.75}
	for _, value := range degrees {
		got := DegreesFloat(float32(value)).Cos().ToFloat64()
		want := math.Cos(value * math.Pi / 180)
		if math.Abs(got-want) >= 1e-6 {
			t.Fatalf("cos(%f) expected ~%f, but got %f", value, want, got)
		}
	}
}

func TestAngleTanAccuracy(t *testing.T) {
	degrees := []float64{0, 0.5, 30, 45, 60, 180.25, 315, 359.5}
	for _, value := range degrees {
		got := DegreesFloat(float32(value)).Tan().ToFloat64()
		want := math.Tan(value * math.Pi / 180)
		if math.Abs(got-want) >= 2e-6 {
			t.Fatalf("tan(%f) expected ~%f, but got %f", value, want, got)
		}
	}
}

func TestAtan(t *testing.T) {
	if NewFraction(1, 1).Atan() != Degrees(45) { t.Fatal("bad atan(1)") }
	if NewFraction(0, 1).Atan() != Degrees(0) { t.Fatal("bad atan(0)") }
	if NewFraction(-1, 1).Atan() != Degrees(315) { t.Fatal("bad atan(-1)") }

	halfAtan := NewFraction(1, 2).Atan().ToDegrees().ToFloat64()
	if math.Abs(halfAtan-26.565) > 0.05 {
		t.Fatalf("atan(1/2) expected ~26.565 degrees, but got %f", halfAtan)
	}
	twoAtan := NewFraction(2, 1).Atan().ToDegrees().ToFloat64()
	if math.Abs(twoAtan-63.435) > 0.05 {
		t.Fatalf("atan(2) expected ~63.435 degrees, but got %f", twoAtan)
	}
}

func TestAtan2Quadrants(t *testing.T) {
	tests := []struct {
		y   Fraction
		x   Fraction
		out Angle
	}{
		{NewFraction(1, 1), NewFraction(1, 1), Degrees(45)},
		{NewFraction(1, 1), NewFraction(-1, 1), Degrees(135)},
		{NewFraction(-1, 1), NewFraction(-1, 1), Degrees(225)},
		{NewFraction(-1, 1), NewFraction(1, 1), Degrees(315)},
		{NewFraction(0, 1), NewFraction(1, 1), Degrees(0)},
		{NewFraction(0, 1), NewFraction(-1, 1), Degrees(180)},
	}

	for i, test := range tests {
		out := Atan2(test.y, test.x)
		if out != test.out {
			str := "test #%d: atan2(%s, %s) expected %s, but got %s"
			t.Fatalf(str, i, test.y, test.x, test.out.degrees, out.degrees)
		}
	}
}

func TestAngleString(t *testing.T) {
	tests := []struct {
		in  Angle
		out string
	}{
		{Degrees(10), "10°"},
		{Degrees(0), "0°"},
		{DegreesFloat(10.1001), "10.1°"},
		{DegreesFloat(10.101), "10.101°"},
		{DegreesFloat(0.125), "0.125°"},
	}

	for i, test := range tests {
		out := test.in.String()
		if out != test.out {
			str := "test #%d: expected %q, but got %q"
			t.Fatalf(str, i, test.out, out)
		}
	}

	if Degrees(45).Format(3) != "45°" {
		t.Fatalf("whole angle Format expected \"45°\", got %q", Degrees(45).Format(3))
	}
	if DegreesFloat(1.1).Format(3) != "1.100°" {
		t.Fatalf("Format(3) of 1.1 expected \"1.100°\", got %q", DegreesFloat(1.1).Format(3))
	}
}
