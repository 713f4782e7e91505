package track

import (
	"math"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as positioning
// geometry for rendering.
const DefaultAccuracy = 1e-6

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// FrameCurve describes a curve that carries an orientation frame at every
// point, parametrized by normalized arc length.
type FrameCurve interface {
	// PointCount returns the number of control points that define the curve.
	PointCount() int

	// FrameAt evaluates the frame at offset, which is in the range [0, 1]
	// and measures normalized arc length from the start of the curve.
	// Offsets outside the range are clamped.
	FrameAt(offset float64) Frame
}

// Prober can be implemented by curves that have a cheaper way of evaluating
// many frames than repeated calls to [FrameCurve.FrameAt].
//
// [SampleStations] defers to it when available.
type Prober interface {
	Probe() (FrameProbe, error)
}

// FrameProbe evaluates frames against state that was precomputed when the
// probe was created. A probe holds on to that state until Close is called;
// callers must close probes they obtain, typically with defer.
type FrameProbe interface {
	// At evaluates the frame at the given normalized arc length offset.
	// It must not be called after Close.
	At(offset float64) Frame

	Close() error
}

// expand rounds f away from zero.
func expand(f float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(f)), f)
}
