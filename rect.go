package lupix

import "image"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle. The behavior for malformed rectangles
// is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four pixel values.
func PxToRect(minX, minY, maxX, maxY Px) Rect {
	return Rect{
		Min: Point{X: minX, Y: minY},
		Max: Point{X: maxX, Y: maxY},
	}
}

// Creates a rect from a pair of points.
func PointsToRect(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// Creates a rect from a set of four whole pixel amounts.
func IntsToRect(minX, minY, maxX, maxY int32) Rect {
	return Rect{
		Min: Point{X: NewPx(minX), Y: NewPx(minY)},
		Max: Point{X: NewPx(maxX), Y: NewPx(maxY)},
	}
}

// Creates a rect from logical pixel coordinates at the given device
// scale. See [Lp.ToPx].
func LpToRect(minX, minY, maxX, maxY Lp, scale Fraction) Rect {
	return Rect{
		Min: Point{X: minX.ToPx(scale), Y: minY.ToPx(scale)},
		Max: Point{X: maxX.ToPx(scale), Y: maxY.ToPx(scale)},
	}
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return IntsToRect(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Max.X), int32(rect.Max.Y))
}

// Converts the rect coordinates to whole pixels and returns them as an
// [image.Rectangle] stdlib value. The Min point rounds down and the
// Max point rounds up, so the returned rectangle always contains the
// original rect.
func (self Rect) ImageRect() image.Rectangle {
	minX, minY, maxX, maxY := self.ToInts()
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY))
}

// Returns the rect coordinates as a set of four whole pixel amounts.
// The conversion may introduce a loss of precision, but the returned
// values are guaranteed to contain the original rect.
func (self Rect) ToInts() (minX, minY, maxX, maxY int32) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(), self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
}

// Returns the rect coordinates as a set of four float64s.
func (self Rect) ToFloat64s() (minX, minY, maxX, maxY float64) {
	return self.Min.X.ToFloat64(), self.Min.Y.ToFloat64(), self.Max.X.ToFloat64(), self.Max.Y.ToFloat64()
}

// Returns the width of the rect.
func (self Rect) Width() Px {
	return self.Max.X - self.Min.X
}

// Returns the height of the rect.
func (self Rect) Height() Px {
	return self.Max.Y - self.Min.Y
}

// Utility method equivalent to ([Rect.Width](), [Rect.Height]()).
func (self Rect) Size() (width, height Px) {
	return self.Width(), self.Height()
}

// Returns the Min point as a pair of whole pixels. The conversion may
// introduce a loss of precision, but the returned coordinates are
// guaranteed to be <= than the original.
func (self Rect) IntOrigin() (int32, int32) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor()
}

// Returns whether the Min point is (0, 0) or not.
func (self Rect) HasZeroOrigin() bool {
	return self.Min.X == 0 && self.Min.Y == 0
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the result of applying the given paddings to each side of
// the rect. In other words, the rect's width after the padding is
// increased by horzPad*2 (likewise for the height with vertPad*2).
func (self Rect) PadPx(horzPad, vertPad Px) Rect {
	return PxToRect(
		self.Min.X-horzPad, self.Min.Y-vertPad,
		self.Max.X+horzPad, self.Max.Y+vertPad,
	)
}

// Returns the result of translating the rect by the given values.
func (self Rect) AddPx(x, y Px) Rect {
	self.Min.X += x
	self.Min.Y += y
	self.Max.X += x
	self.Max.Y += y
	return self
}

// Returns the result of translating the rect by the given value.
func (self Rect) AddPoint(point Point) Rect {
	return self.AddPx(point.X, point.Y)
}

// Returns the result of translating the rect by the given value.
func (self Rect) AddImagePoint(point image.Point) Rect {
	return self.AddPx(NewPx(int32(point.X)), NewPx(int32(point.Y)))
}

// Returns the smallest rect containing both operands.
func (self Rect) Union(other Rect) Rect {
	if other.Min.X < self.Min.X { self.Min.X = other.Min.X }
	if other.Min.Y < self.Min.Y { self.Min.Y = other.Min.Y }
	if other.Max.X > self.Max.X { self.Max.X = other.Max.X }
	if other.Max.Y > self.Max.Y { self.Max.Y = other.Max.Y }
	return self
}

// Returns the largest rect contained by both operands. If the
// operands don't overlap, the result is empty.
func (self Rect) Intersect(other Rect) Rect {
	if other.Min.X > self.Min.X { self.Min.X = other.Min.X }
	if other.Min.Y > self.Min.Y { self.Min.Y = other.Min.Y }
	if other.Max.X < self.Max.X { self.Max.X = other.Max.X }
	if other.Max.Y < self.Max.Y { self.Max.Y = other.Max.Y }
	return self
}

// Returns whether the rect contains the given point or not.
//
// Remember that point == Rect.Min is included, but point == Rect.Max
// is not.
func (self Rect) Contains(point Point) bool {
	return point.In(self)
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
