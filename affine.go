package track

import (
	"iter"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (N0 through N11), then the resulting
// transformation represents this augmented matrix:
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// N0..N2, N3..N5 and N6..N8 are the images of the x, y and z unit vectors and
// N9..N11 is the translation. This convention is consistent with the
// [Wikipedia] formulation of affine transformation as augmented matrix. The
// idea is that (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	// We represent Affine as a struct instead of an array because Go applies fuck-all
	// optimizations to arrays, while structs benefit from SROA.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// YUpToZUp converts from a y-up right-handed space, as used by track CSV
// files, to the z-up right-handed space used for curves: x is kept, the
// negated depth axis −z becomes y, and the height axis y becomes z. The
// determinant is +1, so cross products keep their meaning.
var YUpToZUp = Affine{1, 0, 0, 0, 0, 1, 0, -1, 0, 0, 0, 0}

// ZUpToYUp is the inverse of [YUpToZUp].
var ZUpToYUp = Affine{1, 0, 0, 0, 0, -1, 0, 1, 0, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// Rotate creates an affine transform representing rotation of th radians
// about axis, which must be a unit vector.
//
// The convention for rotation follows the right-hand rule. With the z axis
// as the rotation axis, a positive angle rotates a positive X direction
// into positive Y.
func Rotate(axis Vec3, th float64) Affine {
	sin, cos := math.Sincos(th)
	c := 1 - cos
	x, y, z := axis.Splat()
	return Affine{
		x*x*c + cos, x*y*c + z*sin, x*z*c - y*sin,
		x*y*c - z*sin, y*y*c + cos, y*z*c + x*sin,
		x*z*c + y*sin, y*z*c - x*sin, z*z*c + cos,
		0, 0, 0,
	}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about an axis placed at center.
//
// See [Rotate] for more info.
func RotateAbout(axis Vec3, th float64, center Point) Affine {
	c := Vec3(center)
	return Translate(c.Negate()).ThenRotate(axis, th).ThenTranslate(c)
}

// parallelCos is the cosine below which two unit vectors are no longer
// treated as parallel by RotationBetween.
const parallelCos = 0.999999

// RotationBetween creates the minimal rotation that maps the unit vector a
// onto the unit vector b.
//
// When the vectors are parallel within a cosine of 0.999999 the result is
// the identity transform. When they are anti-parallel there is no unique
// minimal rotation and the result is a half turn about an arbitrary axis
// perpendicular to a.
func RotationBetween(a, b Vec3) Affine {
	d := min(1, max(-1, a.Dot(b)))
	switch {
	case d >= parallelCos:
		return Identity
	case d <= -parallelCos:
		return Rotate(perpendicularTo(a), math.Pi)
	}
	return Rotate(a.Cross(b).Normalize(), math.Acos(d))
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N3*o.N1 + aff.N6*o.N2,
		aff.N1*o.N0 + aff.N4*o.N1 + aff.N7*o.N2,
		aff.N2*o.N0 + aff.N5*o.N1 + aff.N8*o.N2,
		aff.N0*o.N3 + aff.N3*o.N4 + aff.N6*o.N5,
		aff.N1*o.N3 + aff.N4*o.N4 + aff.N7*o.N5,
		aff.N2*o.N3 + aff.N5*o.N4 + aff.N8*o.N5,
		aff.N0*o.N6 + aff.N3*o.N7 + aff.N6*o.N8,
		aff.N1*o.N6 + aff.N4*o.N7 + aff.N7*o.N8,
		aff.N2*o.N6 + aff.N5*o.N7 + aff.N8*o.N8,
		aff.N0*o.N9 + aff.N3*o.N10 + aff.N6*o.N11 + aff.N9,
		aff.N1*o.N9 + aff.N4*o.N10 + aff.N7*o.N11 + aff.N10,
		aff.N2*o.N9 + aff.N5*o.N10 + aff.N8*o.N11 + aff.N11,
	}
}

// PreRotate creates a rotation by th about axis followed by aff.
//
// Equivalent to "aff * Rotate(axis, th)"
func (aff Affine) PreRotate(axis Vec3, th float64) Affine {
	return aff.Mul(Rotate(axis, th))
}

// ThenRotate creates aff followed by a rotation of th about axis.
//
// Equivalent to "Rotate(axis, th) * aff"
func (aff Affine) ThenRotate(axis Vec3, th float64) Affine {
	return Rotate(axis, th).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	n0 := +invDet * (aff.N4*aff.N8 - aff.N7*aff.N5)
	n1 := -invDet * (aff.N1*aff.N8 - aff.N7*aff.N2)
	n2 := +invDet * (aff.N1*aff.N5 - aff.N4*aff.N2)
	n3 := -invDet * (aff.N3*aff.N8 - aff.N6*aff.N5)
	n4 := +invDet * (aff.N0*aff.N8 - aff.N6*aff.N2)
	n5 := -invDet * (aff.N0*aff.N5 - aff.N3*aff.N2)
	n6 := +invDet * (aff.N3*aff.N7 - aff.N6*aff.N4)
	n7 := -invDet * (aff.N0*aff.N7 - aff.N6*aff.N1)
	n8 := +invDet * (aff.N0*aff.N4 - aff.N3*aff.N1)
	return Affine{
		n0, n1, n2,
		n3, n4, n5,
		n6, n7, n8,
		-(n0*aff.N9 + n3*aff.N10 + n6*aff.N11),
		-(n1*aff.N9 + n4*aff.N10 + n7*aff.N11),
		-(n2*aff.N9 + n5*aff.N10 + n8*aff.N11),
	}
}

// TransformVec applies the linear part of the transform to v, ignoring the
// translation. This is the correct way to transform directions.
func (aff Affine) TransformVec(v Vec3) Vec3 {
	return Vec3{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// TransformBoxBoundingBox computes the bounding box of a transformed box.
//
// Returns the minimal [Box] that encloses the given box after affine
// transformation. If the transform is axis-aligned, then this bounding box is
// "tight", in other words the returned box is the transformed box.
//
// The returned box always has non-negative dimensions.
func (aff Affine) TransformBoxBoundingBox(box Box) Box {
	b := NewBoxFromPoints(Pt(box.X0, box.Y0, box.Z0).Transform(aff), Pt(box.X1, box.Y1, box.Z1).Transform(aff))
	b = b.UnionPoint(Pt(box.X0, box.Y0, box.Z1).Transform(aff))
	b = b.UnionPoint(Pt(box.X0, box.Y1, box.Z0).Transform(aff))
	b = b.UnionPoint(Pt(box.X0, box.Y1, box.Z1).Transform(aff))
	b = b.UnionPoint(Pt(box.X1, box.Y0, box.Z0).Transform(aff))
	b = b.UnionPoint(Pt(box.X1, box.Y0, box.Z1).Transform(aff))
	b = b.UnionPoint(Pt(box.X1, box.Y1, box.Z0).Transform(aff))
	return b
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
