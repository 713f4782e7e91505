package track

import (
	"fmt"
	"math"
)

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o, following the right-hand rule.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// Round returns a new vector with x, y and z rounded to the nearest integers.
func (v Vec3) Round() Point {
	return Point{
		X: math.Round(v.X),
		Y: math.Round(v.Y),
		Z: math.Round(v.Z),
	}
}

// Ceil returns a new vector with x, y and z rounded up to the nearest integers.
func (v Vec3) Ceil() Point {
	return Point{
		X: math.Ceil(v.X),
		Y: math.Ceil(v.Y),
		Z: math.Ceil(v.Z),
	}
}

// Floor returns a new vector with x, y and z rounded down to the nearest integers.
func (v Vec3) Floor() Point {
	return Point{
		X: math.Floor(v.X),
		Y: math.Floor(v.Y),
		Z: math.Floor(v.Z),
	}
}

// Expand returns a new vector with x, y and z rounded away from zero to the nearest
// integers.
func (v Vec3) Expand() Point {
	return Point{
		X: expand(v.X),
		Y: expand(v.Y),
		Z: expand(v.Z),
	}
}

// Trunc returns a new vector with x, y and z rounded towards zero to the nearest
// integers.
func (v Vec3) Trunc() Point {
	return Point{
		X: math.Trunc(v.X),
		Y: math.Trunc(v.Y),
		Z: math.Trunc(v.Z),
	}
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// nearVerticalCos bounds how closely a direction may align with the z axis
// before perpendicularTo switches to the x axis as its fallback.
const nearVerticalCos = 0.9999

// perpendicularTo returns a unit vector perpendicular to the unit vector v.
// The result is the projection of the z axis onto the plane normal to v,
// falling back to the x axis when v is nearly vertical.
func perpendicularTo(v Vec3) Vec3 {
	axis := Vec(0, 0, 1)
	if math.Abs(v.Z) > nearVerticalCos {
		axis = Vec(1, 0, 0)
	}
	return v.Cross(axis).Cross(v).Normalize()
}
