package track

import (
	"math"
)

// Tangents returns the forward tangent at every point of a polyline given by
// its positions. The tangent at a point is the normalized direction to the
// next point; the last point repeats the tangent before it.
//
// Coincident neighbors yield no direction, in which case the previous
// tangent carries over. A leading run of coincident points, and a polyline
// of a single point, fall back to the z axis.
func Tangents(points []Point) []Vec3 {
	if len(points) == 0 {
		return nil
	}
	tans := make([]Vec3, len(points))
	if len(points) == 1 {
		tans[0] = Vec(0, 0, 1)
		return tans
	}
	for i := range len(points) - 1 {
		d := points[i+1].Sub(points[i])
		switch {
		case d.Hypot2() > 0:
			tans[i] = d.Normalize()
		case i == 0:
			tans[i] = Vec(0, 0, 1)
		default:
			tans[i] = tans[i-1]
		}
	}
	tans[len(tans)-1] = tans[len(tans)-2]
	return tans
}

// normalField transports a seed normal along the tangent field with minimal
// rotation from one tangent to the next, yielding the zero-twist reference
// normal at every point.
func normalField(tans []Vec3) []Vec3 {
	normals := make([]Vec3, len(tans))
	if len(tans) == 0 {
		return normals
	}
	normals[0] = perpendicularTo(tans[0])
	for i := 1; i < len(tans); i++ {
		normals[i] = RotationBetween(tans[i-1], tans[i]).TransformVec(normals[i-1])
	}
	return normals
}

// ReconstructTilts computes the tilt angle, in radians, at every point of a
// polyline such that rotating the transported zero-twist normal by that
// angle about the tangent reproduces the given up directions.
//
// ups holds the desired up direction per point and must have the same length
// as points. The up directions need not be perpendicular to the curve; each
// is projected onto the plane normal to the tangent first. An up direction
// parallel to the tangent has no projection and yields a tilt of 0, as does
// a polyline of a single point.
//
// The sign of a tilt follows the right-hand rule about the direction of
// travel: positive tilts roll the frame counter-clockwise when looking down
// the tangent.
func ReconstructTilts(points []Point, ups []Vec3) []float64 {
	tilts := make([]float64, len(points))
	if len(points) < 2 {
		return tilts
	}
	tans := Tangents(points)
	normals := normalField(tans)
	for i := range points {
		t := tans[i]
		n := normals[i]
		proj := ups[i].Sub(t.Mul(ups[i].Dot(t)))
		if proj.Hypot2() == 0 {
			continue
		}
		proj = proj.Normalize()
		angle := math.Acos(min(1, max(-1, n.Dot(proj))))
		if n.Cross(proj).Dot(t) < 0 {
			angle = -angle
		}
		tilts[i] = angle
	}
	return tilts
}
