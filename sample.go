package track

// SampleStations samples count stations at uniform arc length offsets along
// the curve, including both endpoints. A count of zero (or less) selects the
// curve's native point count, so a round trip through import and export
// lands a sample on every original station. A count of one yields the single
// frame at the start of the curve.
//
// A curve without points yields no stations and no error, whatever the
// requested count.
//
// When the curve provides a probe it is used for all evaluations and closed
// before returning.
func SampleStations(c FrameCurve, count int) ([]Station, error) {
	if count <= 0 {
		count = c.PointCount()
	}
	if count == 0 || c.PointCount() == 0 {
		return nil, nil
	}
	frameAt := c.FrameAt
	if pc, ok := c.(Prober); ok {
		probe, err := pc.Probe()
		if err != nil {
			return nil, err
		}
		defer func() { _ = probe.Close() }()
		frameAt = probe.At
	}
	den := count - 1
	if den < 1 {
		den = 1
	}
	stations := make([]Station, count)
	for i := range stations {
		stations[i] = frameAt(float64(i) / float64(den)).Station()
	}
	return stations, nil
}
