package track

import (
	"math"
)

// Box is an axis-aligned box in space, described by its minimum and maximum
// corners.
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// the dimensions are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// NewBoxFromCenter returns a box with the given half-dimensions, centered
// around the center point.
func NewBoxFromCenter(center Point, dims Vec3) Box {
	return Box{
		X0: center.X - dims.X,
		Y0: center.Y - dims.Y,
		Z0: center.Z - dims.Z,
		X1: center.X + dims.X,
		Y1: center.Y + dims.Y,
		Z1: center.Z + dims.Z,
	}
}

// Abs returns a new box with the same extents as b, but ensuring that the
// dimensions are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

func (b Box) MinX() float64 { return min(b.X0, b.X1) }
func (b Box) MaxX() float64 { return max(b.X0, b.X1) }
func (b Box) MinY() float64 { return min(b.Y0, b.Y1) }
func (b Box) MaxY() float64 { return max(b.Y0, b.Y1) }
func (b Box) MinZ() float64 { return min(b.Z0, b.Z1) }
func (b Box) MaxZ() float64 { return max(b.Z0, b.Z1) }

// Origin returns the minimum corner of the box, assuming non-negative
// dimensions.
func (b Box) Origin() Point {
	return Point{
		X: b.X0,
		Y: b.Y0,
		Z: b.Z0,
	}
}

// Width returns the box's width, defined as X1 − X0. It may be negative.
func (b Box) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the box's height, defined as Y1 − Y0. It may be negative.
func (b Box) Height() float64 {
	return b.Y1 - b.Y0
}

// Depth returns the box's depth, defined as Z1 − Z0. It may be negative.
func (b Box) Depth() float64 {
	return b.Z1 - b.Z0
}

// Dimensions returns the box's extent along each axis.
func (b Box) Dimensions() Vec3 {
	return Vec3{
		X: b.Width(),
		Y: b.Height(),
		Z: b.Depth(),
	}
}

func (b Box) Volume() float64 {
	return b.Width() * b.Height() * b.Depth()
}

func (b Box) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

func (b Box) Contains(pt Point) bool {
	return pt.X >= b.X0 &&
		pt.X < b.X1 &&
		pt.Y >= b.Y0 &&
		pt.Y < b.Y1 &&
		pt.Z >= b.Z0 &&
		pt.Z < b.Z1
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if the dimensions are non-negative.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the surface of zero-volume boxes. Thus, a succession
// of UnionPoint operations on a series of points yields their enclosing box.
//
// Results are valid only if the dimensions are non-negative.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

// Intersect returns the intersection of two boxes.
//
// The result is zero-volume if either input has negative dimensions. The
// result always has non-negative dimensions.
func (b Box) Intersect(o Box) Box {
	x0 := max(b.X0, o.X0)
	y0 := max(b.Y0, o.Y0)
	z0 := max(b.Z0, o.Z0)
	x1 := min(b.X1, o.X1)
	y1 := min(b.Y1, o.Y1)
	z1 := min(b.Z1, o.Z1)
	return Box{
		X0: x0,
		Y0: y0,
		Z0: z0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
		Z1: max(z0, z1),
	}
}

// Inflate expands a box by a constant amount in all directions.
//
// The logic simply applies the amount on each axis. If box volume or added
// dimensions are negative, this could give odd results.
func (b Box) Inflate(x, y, z float64) Box {
	return Box{
		X0: b.X0 - x,
		Y0: b.Y0 - y,
		Z0: b.Z0 - z,
		X1: b.X1 + x,
		Y1: b.Y1 + y,
		Z1: b.Z1 + z,
	}
}

// ScaleFromOrigin scales the box by the factor f with respect to the origin
// (the point (0, 0, 0)).
func (b Box) ScaleFromOrigin(f float64) Box {
	return Box{
		X0: b.X0 * f,
		Y0: b.Y0 * f,
		Z0: b.Z0 * f,
		X1: b.X1 * f,
		Y1: b.Y1 * f,
		Z1: b.Z1 * f,
	}
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		X0: b.X0 + v.X,
		Y0: b.Y0 + v.Y,
		Z0: b.Z0 + v.Z,
		X1: b.X1 + v.X,
		Y1: b.Y1 + v.Y,
		Z1: b.Z1 + v.Z,
	}
}

func (b Box) IsInf() bool {
	return math.IsInf(b.X0, 0) ||
		math.IsInf(b.X1, 0) ||
		math.IsInf(b.Y0, 0) ||
		math.IsInf(b.Y1, 0) ||
		math.IsInf(b.Z0, 0) ||
		math.IsInf(b.Z1, 0)
}

func (b Box) IsNaN() bool {
	return math.IsNaN(b.X0) ||
		math.IsNaN(b.X1) ||
		math.IsNaN(b.Y0) ||
		math.IsNaN(b.Y1) ||
		math.IsNaN(b.Z0) ||
		math.IsNaN(b.Z1)
}
