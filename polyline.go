package track

import (
	"errors"
	"iter"
	"slices"
	"sort"
)

// CurvePoint is one control point of a [Polyline]: a position in z-up curve
// space together with the roll of the frame that passes through it.
type CurvePoint struct {
	Position Point
	// Tilt is the roll angle in radians relative to the zero-twist frame,
	// following the right-hand rule about the direction of travel.
	Tilt float64
}

func (cp CurvePoint) Transform(aff Affine) CurvePoint {
	return CurvePoint{
		Position: cp.Position.Transform(aff),
		Tilt:     cp.Tilt,
	}
}

// Polyline is a curve described by straight segments between control points,
// each carrying a tilt. It is the in-memory form of an imported track.
//
// Frames evaluated on a polyline are parametrized by normalized arc length.
// Within a segment the tilt interpolates linearly between the two control
// points; the tangent is constant per segment and changes at control points.
type Polyline []CurvePoint

var (
	_ FrameCurve = Polyline{}
	_ Prober     = Polyline{}
	_ Arclener   = Polyline{}
)

// PolylineFromStations builds a polyline from track stations. Positions are
// mapped from the y-up space of track files into z-up curve space, and the
// stations' up directions become tilts relative to the zero-twist frame.
func PolylineFromStations(stations []Station) Polyline {
	if len(stations) == 0 {
		return nil
	}
	points := make([]Point, len(stations))
	ups := make([]Vec3, len(stations))
	for i, s := range stations {
		points[i] = s.Position.Transform(YUpToZUp)
		ups[i] = YUpToZUp.TransformVec(s.Up)
	}
	tilts := ReconstructTilts(points, ups)
	line := make(Polyline, len(stations))
	for i := range line {
		line[i] = CurvePoint{Position: points[i], Tilt: tilts[i]}
	}
	return line
}

// PointCount returns the number of control points.
func (p Polyline) PointCount() int {
	return len(p)
}

// Start returns the position of the first control point, or the zero point
// for an empty polyline.
func (p Polyline) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0].Position
}

// End returns the position of the last control point, or the zero point for
// an empty polyline.
func (p Polyline) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].Position
}

// Segments returns an iterator over the line segments connecting successive
// control points.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(p); i++ {
			if !yield(Line{p[i].Position, p[i+1].Position}) {
				return
			}
		}
	}
}

// Length returns the total arc length of the polyline.
func (p Polyline) Length() float64 {
	var sum float64
	for seg := range p.Segments() {
		sum += seg.Length()
	}
	return sum
}

// Arclen returns the length of the polyline. The accuracy argument is
// ignored; the result is exact.
func (p Polyline) Arclen(accuracy float64) float64 {
	return p.Length()
}

// BoundingBox returns the smallest axis-aligned box enclosing all control
// points.
func (p Polyline) BoundingBox() Box {
	if len(p) == 0 {
		return Box{}
	}
	b := NewBoxFromPoints(p[0].Position, p[0].Position)
	for _, cp := range p[1:] {
		b = b.UnionPoint(cp.Position)
	}
	return b
}

// Transform applies aff to all control point positions, leaving tilts
// untouched.
func (p Polyline) Transform(aff Affine) Polyline {
	return slices.Collect(Transform(slices.Values(p), aff))
}

// Eval evaluates the position at the normalized arc length offset t in
// [0, 1]. Offsets outside the range are clamped.
func (p Polyline) Eval(t float64) Point {
	if len(p) == 0 {
		return Point{}
	}
	total := p.Length()
	if total == 0 {
		return p[0].Position
	}
	s := min(1, max(0, t)) * total
	for seg := range p.Segments() {
		l := seg.Length()
		if s <= l {
			if l == 0 {
				return seg.P0
			}
			return seg.Eval(s / l)
		}
		s -= l
	}
	return p[len(p)-1].Position
}

// FrameAt evaluates the frame at the normalized arc length offset. Each call
// prepares the whole polyline anew; to evaluate many frames, obtain a probe
// via [Polyline.Probe] once and use that instead.
func (p Polyline) FrameAt(offset float64) Frame {
	return p.newProbe().At(offset)
}

// Probe returns a probe that evaluates frames against precomputed arc
// lengths and transported normals. The caller must close it when done.
// Probing an empty polyline is an error.
func (p Polyline) Probe() (FrameProbe, error) {
	if len(p) == 0 {
		return nil, errors.New("track: cannot probe an empty polyline")
	}
	return p.newProbe(), nil
}

func (p Polyline) newProbe() *polylineProbe {
	pts := make([]Point, len(p))
	tilts := make([]float64, len(p))
	for i, cp := range p {
		pts[i] = cp.Position
		tilts[i] = cp.Tilt
	}
	tans := Tangents(pts)
	cum := make([]float64, len(p))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i].Distance(pts[i-1])
	}
	return &polylineProbe{
		pts:     pts,
		tilts:   tilts,
		tans:    tans,
		normals: normalField(tans),
		cum:     cum,
	}
}

// polylineProbe holds per-point tangents, transported normals and cumulative
// arc lengths so that individual frame evaluations only cost a binary
// search.
type polylineProbe struct {
	pts     []Point
	tilts   []float64
	tans    []Vec3
	normals []Vec3
	cum     []float64
	closed  bool
}

var _ FrameProbe = (*polylineProbe)(nil)

func (pr *polylineProbe) At(offset float64) Frame {
	if pr.closed {
		panic("track: probe used after Close")
	}
	n := len(pr.pts)
	if n == 0 {
		return Frame{}
	}
	if n == 1 {
		return pr.frameAt(0, 0)
	}
	total := pr.cum[n-1]
	if total == 0 {
		return pr.frameAt(0, 0)
	}
	s := min(1, max(0, offset)) * total
	if s >= total {
		return pr.frameAt(n-2, 1)
	}
	// Locate the segment containing s. An offset that lands exactly on a
	// control point uses its outgoing segment, so the point's own tilt and
	// tangent apply.
	i := sort.SearchFloat64s(pr.cum, s)
	var u float64
	if i < n && pr.cum[i] == s {
		u = 0
	} else {
		i--
		u = (s - pr.cum[i]) / (pr.cum[i+1] - pr.cum[i])
	}
	return pr.frameAt(i, u)
}

// frameAt builds the frame on segment i at fraction u of its length. As a
// special case, i may name the final control point, whose frame is that of
// the point itself.
func (pr *polylineProbe) frameAt(i int, u float64) Frame {
	var pos Point
	var tilt float64
	if i+1 < len(pr.pts) {
		pos = Line{pr.pts[i], pr.pts[i+1]}.Eval(u)
		tilt = pr.tilts[i] + u*(pr.tilts[i+1]-pr.tilts[i])
	} else {
		pos = pr.pts[i]
		tilt = pr.tilts[i]
	}
	front := pr.tans[i]
	up := Rotate(front, tilt).TransformVec(pr.normals[i])
	return Frame{
		Position: pos,
		Front:    front,
		Left:     up.Cross(front),
		Up:       up,
	}
}

// Close releases the probe's precomputed state. The probe must not be used
// afterwards.
func (pr *polylineProbe) Close() error {
	pr.pts, pr.tilts, pr.tans, pr.normals, pr.cum = nil, nil, nil, nil, nil
	pr.closed = true
	return nil
}
