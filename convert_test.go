package lupix

import "testing"
import "math"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a   int64
		b   int64
		out int64
	}{
		{7, 2, 3}, {-7, 2, -4}, {7, -2, -4}, {-7, -2, 3},
		{6, 3, 2}, {-6, 3, -2}, {0, 5, 0}, {1, 5, 0}, {-1, 5, -1},
	}

	for i, test := range tests {
		out := floorDiv(test.a, test.b)
		if out != test.out {
			str := "test #%d: floorDiv(%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.out, out)
		}
	}
}

func TestRoundToScale(t *testing.T) {
	tests := []struct {
		raw   int64
		scale int64
		out   int64
	}{
		{6, 4, 2},   // 1.5 rounds up
		{-6, 4, -1}, // -1.5 rounds towards +inf too
		{5, 4, 1},   // 1.25 rounds down
		{-5, 4, -1},
		{0, 4, 0}, {4, 4, 1}, {-4, 4, -1},
	}

	for i, test := range tests {
		out := roundToScale(test.raw, test.scale)
		if out != test.out {
			str := "test #%d: roundToScale(%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.raw, test.scale, test.out, out)
		}
	}
}

func TestSaturatingNarrow(t *testing.T) {
	if satInt16(40000) != math.MaxInt16 { t.Fatal("bad int16 saturation") }
	if satInt16(-40000) != math.MinInt16 { t.Fatal("bad int16 saturation") }
	if satInt32(1<<40) != math.MaxInt32 { t.Fatal("bad int32 saturation") }
	if satInt32(-(1 << 40)) != math.MinInt32 { t.Fatal("bad int32 saturation") }
	if satUint32(-5) != 0 { t.Fatal("bad uint32 saturation") }
	if satUint32(1<<40) != math.MaxUint32 { t.Fatal("bad uint32 saturation") }
	if satInt32(77) != 77 || satInt16(-77) != -77 || satUint32(77) != 77 {
		t.Fatal("in-range values shouldn't change")
	}
}

func TestFloatToRaw(t *testing.T) {
	if floatToRaw(math.NaN(), 4) != 0 { t.Fatal("NaN should map to zero") }
	if floatToRaw(1.5, 4) != 6 { t.Fatal("bad positive conversion") }
	if floatToRaw(-1.5, 4) != -6 { t.Fatal("bad negative conversion") }
	if floatToRaw(1e12, 4) != math.MaxInt32 { t.Fatal("bad overflow saturation") }
	if floatToRaw(-1e12, 4) != math.MinInt32 { t.Fatal("bad underflow saturation") }
}
