// Package track converts between the tab-separated track CSV format of the
// [NoLimits 2] roller coaster simulator and 3D polyline curves that store
// banking as a single tilt angle per point.
//
// # Stations and polylines
//
// The CSV format describes a track as a sequence of stations: points sampled
// along the track spline, each carrying a position and an orthonormal
// orientation frame made up of front, left, and up vectors. [Station] is the
// in-memory representation of one such row, and [ReadStations] and
// [WriteStations] convert between slices of stations and the on-disk format.
// Rows that are truncated or fail to parse are dropped and logged (see
// [SetLogger]); this conveniently skips the header row, too.
//
// [Polyline] is the curve-side representation: positions with a tilt angle
// per point. The orientation frames of the source data are not stored.
// Instead, tilt measures each frame's roll against a minimum-twist reference
// frame derived from the positions alone, which keeps the representation
// compact and editable: moving points reshapes the track, while tilts retain
// their meaning as banking.
//
// [PolylineFromStations] and [SampleStations] convert between the two
// representations. The former preserves the input points exactly; the latter
// samples a curve at uniform arc-length spacing and can both round-trip a
// polyline at its native point count and resample it at any other count.
//
// # Coordinate spaces
//
// The simulator uses a right-handed space where y points up and the track
// extends along x and z. Curves use a right-handed space where z points up,
// which is the more common convention in CAD and 3D content tools. The
// [YUpToZUp] and [ZUpToYUp] transforms convert between the two; both are
// rotations, so frames stay orthonormal and cross products keep their
// meaning. [Station.Frame] and [Frame.Station] apply them for you.
//
// # Tilt and the minimum-twist frame
//
// A polyline's positions determine unit tangents ([Tangents]), but tangents
// alone don't determine an orientation: a frame can still spin freely about
// the direction of travel. The package resolves this with a minimum-twist
// normal field, computed by parallel transport: the first normal is chosen
// perpendicular to the first tangent, and each subsequent normal is the
// previous one rotated by the smallest rotation that maps the previous
// tangent onto the next ([RotationBetween]). The resulting field never
// twists about the tangent, so any roll present in the source data shows up
// entirely in the tilt angles that [ReconstructTilts] measures.
//
// Tilt is signed following the right-hand rule about the direction of
// travel: positive tilt banks the track counterclockwise when viewed from
// behind.
//
// # Sampling and probes
//
// [FrameCurve] describes curves that can produce an orientation frame at any
// normalized arc-length offset. [Prober] is an optional interface for curves
// that can amortize the setup cost of frame evaluation across many queries;
// [SampleStations] uses it when available. [Polyline] implements both.
//
// # Iterators
//
// Functions that can produce or consume points one at a time accept and
// return iterators to avoid allocating slices; see [Transform] and
// [Polyline.Segments]. Use [slices.Collect] and [slices.Values] to convert
// between the two.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Parallel Transport Approach to Curve Framing] by Hanson and Ma
//   - [There is More than One Way to Frame a Curve] by Bishop
//   - [Computation of Rotation Minimizing Frames] by Wang, Jüttler, Zheng, and Liu
//   - [Rodrigues' rotation formula]
//
// [NoLimits 2]: https://www.nolimitscoaster.com/
// [Parallel Transport Approach to Curve Framing]: https://legacy.cs.indiana.edu/ftp/techreports/TR425.pdf
// [There is More than One Way to Frame a Curve]: https://www.jstor.org/stable/2319846
// [Computation of Rotation Minimizing Frames]: https://dl.acm.org/doi/10.1145/1330511.1330513
// [Rodrigues' rotation formula]: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
package track
