package lupix

import "image"
import "strconv"

// A pair of [Px] coordinates on the device surface.
type Point struct {
	X Px
	Y Px
}

// Creates a point from a pair of pixel values.
func PxToPoint(x, y Px) Point {
	return Point{X: x, Y: y}
}

// Creates a point from a pair of whole pixel amounts.
func IntsToPoint(x, y int32) Point {
	return Point{X: NewPx(x), Y: NewPx(y)}
}

// Creates a point from logical pixel coordinates at the given device
// scale. See [Lp.ToPx].
func LpToPoint(x, y Lp, scale Fraction) Point {
	return Point{X: x.ToPx(scale), Y: y.ToPx(scale)}
}

// Converts the point coordinates to whole pixels and returns them as
// an [image.Point] stdlib value. The conversion will round the
// coordinates if necessary, which could be problematic in some
// contexts.
func (self Point) ImagePoint() image.Point {
	x, y := self.ToInts()
	return image.Pt(int(x), int(y))
}

// Returns the point coordinates as a pair of whole pixel amounts.
// The conversion will round the coordinates if necessary, which could
// be problematic in some contexts.
func (self Point) ToInts() (int32, int32) {
	return self.X.ToInt(), self.Y.ToInt()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the point coordinates as logical pixels at the given device
// scale. See [Px.ToLp].
func (self Point) ToLps(scale Fraction) (x, y Lp) {
	return self.X.ToLp(scale), self.Y.ToLp(scale)
}

// Returns the result of adding the given pair of pixel values to the
// current point coordinates.
func (self Point) AddPx(x, y Px) Point {
	self.X += x
	self.Y += y
	return self
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns whether the current point is inside the given [Rect].
func (self Point) In(rect Rect) bool {
	return self.X >= rect.Min.X && self.X < rect.Max.X && self.Y >= rect.Min.Y && self.Y < rect.Max.Y
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
