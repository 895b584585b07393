// Layout and rendering code that repeatedly adds, scales and compares
// coordinates can't afford floating point drift: two code paths that
// compute "the same" position must land on the same pixel, every time,
// on every machine. lupix provides the integer-only numeric tower for
// that kind of work.
//
// The package defines three families of types:
//   - [Fraction], a bounded rational number used for exact ratios,
//     device scale factors and angle storage.
//   - [Angle], a rotation normalized to [0, 360) degrees, with
//     table-driven trigonometry (no math.Sin in sight).
//   - [Px], [UPx] and [Lp], fixed point screen units: device pixels at
//     quarter-pixel granularity (signed and unsigned) and a device
//     independent logical pixel at 1/1905 granularity. Converting
//     between pixels and logical pixels takes the display's scale
//     factor as a Fraction.
//
// All types are immutable values. Arithmetic never returns errors:
// precision loss is handled by a deterministic bounded reduction,
// and narrowing conversions saturate unless you ask for the checked
// variant. Everything is safe for concurrent use.
package lupix
