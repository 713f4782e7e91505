package track

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N3*pt.Y + aff.N6*pt.Z + aff.N9,
		Y: aff.N1*pt.X + aff.N4*pt.Y + aff.N7*pt.Z + aff.N10,
		Z: aff.N2*pt.X + aff.N5*pt.Y + aff.N8*pt.Z + aff.N11,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Add and negate the vector.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// Round returns a new point with x, y and z rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{
		X: math.Round(pt.X),
		Y: math.Round(pt.Y),
		Z: math.Round(pt.Z),
	}
}

// Ceil returns a new point with x, y and z rounded up to the nearest integers.
func (pt Point) Ceil() Point {
	return Point{
		X: math.Ceil(pt.X),
		Y: math.Ceil(pt.Y),
		Z: math.Ceil(pt.Z),
	}
}

// Floor returns a new point with x, y and z rounded down to the nearest integers.
func (pt Point) Floor() Point {
	return Point{
		X: math.Floor(pt.X),
		Y: math.Floor(pt.Y),
		Z: math.Floor(pt.Z),
	}
}

// Expand returns a new point with x, y and z rounded away from zero to the nearest
// integers.
func (pt Point) Expand() Point {
	return Point{
		X: expand(pt.X),
		Y: expand(pt.Y),
		Z: expand(pt.Z),
	}
}

// Trunc returns a new point with x, y and z rounded towards zero to the nearest
// integers.
func (pt Point) Trunc() Point {
	return Point{
		X: math.Trunc(pt.X),
		Y: math.Trunc(pt.Y),
		Z: math.Trunc(pt.Z),
	}
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
