package lupix

// Internal multipliers for the scaled unit types. A [Px] stores fourths
// of a pixel; an [Lp] stores 1905ths of a logical pixel. 1905 is chosen
// so that one inch (96 logical pixels, 182880 internal units) divides
// evenly by 96 dpi, 72 points and 2540 tenth-millimeters.
const (
	pxScale   = 4
	lpScale   = 1905
	lpPerInch = lpScale * 96 // 182880
)

// Minimum and maximum constants.
const (
	MaxPx  Px  = +0x7FFFFFFF
	MinPx  Px  = -0x7FFFFFFF - 1
	MaxUPx UPx = 0xFFFFFFFF
	MaxLp  Lp  = +0x7FFFFFFF
	MinLp  Lp  = -0x7FFFFFFF - 1

	// One natural unit of each type, in internal representation.
	OnePx  Px  = pxScale
	OneUPx UPx = pxScale
	OneLp  Lp  = lpScale
)

// Values representable by each unit type, in natural units.
const (
	MaxWholePx  int32  = 0x7FFFFFFF / pxScale
	MinWholePx  int32  = (-0x7FFFFFFF - 1) / pxScale
	MaxWholeUPx uint32 = 0xFFFFFFFF / pxScale
	MaxWholeLp  int32  = 0x7FFFFFFF / lpScale
	MinWholeLp  int32  = (-0x7FFFFFFF - 1) / lpScale
)
