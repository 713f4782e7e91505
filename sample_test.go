package track

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakeCurve struct {
	frame    Frame
	n        int
	frameAts int
}

func (c *fakeCurve) PointCount() int { return c.n }

func (c *fakeCurve) FrameAt(offset float64) Frame {
	c.frameAts++
	return c.frame
}

type fakeProbingCurve struct {
	fakeCurve
	offsets []float64
	closed  int
}

func (c *fakeProbingCurve) Probe() (FrameProbe, error) {
	return &fakeProbe{curve: c}, nil
}

type fakeProbe struct {
	curve *fakeProbingCurve
}

func (p *fakeProbe) At(offset float64) Frame {
	p.curve.offsets = append(p.curve.offsets, offset)
	return p.curve.frame
}

func (p *fakeProbe) Close() error {
	p.curve.closed++
	return nil
}

type failingProber struct {
	fakeCurve
}

func (c *failingProber) Probe() (FrameProbe, error) {
	return nil, errors.New("no probe for you")
}

func TestSampleStations(t *testing.T) {
	c := &fakeCurve{
		frame: Frame{
			Position: Pt(10, 20, 30),
			Front:    Vec(0, 1, 0),
			Left:     Vec(-1, 0, 0),
			Up:       Vec(0, 0, 1),
		},
		n: 1,
	}
	stations, err := SampleStations(c, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The frame comes back mapped into the y-up space of track files.
	diff(t, []Station{{
		Position: Pt(10, 30, -20),
		Front:    Vec(0, 0, -1),
		Left:     Vec(-1, 0, 0),
		Up:       Vec(0, 1, 0),
	}}, stations)
	diff(t, 1, c.frameAts)
}

func TestSampleStationsCounts(t *testing.T) {
	c := &fakeProbingCurve{fakeCurve: fakeCurve{n: 3}}
	stations, err := SampleStations(c, 5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 5, len(stations))
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, c.offsets)
	diff(t, 1, c.closed)
	// The probe handles all evaluations.
	diff(t, 0, c.frameAts)

	// A zero count selects the curve's native point count.
	c = &fakeProbingCurve{fakeCurve: fakeCurve{n: 3}}
	stations, err = SampleStations(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3, len(stations))
	diff(t, []float64{0, 0.5, 1}, c.offsets)

	// A single station sits at the start of the curve.
	c = &fakeProbingCurve{fakeCurve: fakeCurve{n: 3}}
	stations, err = SampleStations(c, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1, len(stations))
	diff(t, []float64{0}, c.offsets)
}

func TestSampleStationsEmpty(t *testing.T) {
	for _, count := range []int{0, 1, 7} {
		stations, err := SampleStations(&fakeCurve{}, count)
		if err != nil {
			t.Fatal(err)
		}
		if stations != nil {
			t.Errorf("got %v, want no stations", stations)
		}
	}
}

func TestSampleStationsProbeError(t *testing.T) {
	c := &failingProber{fakeCurve: fakeCurve{n: 2}}
	if _, err := SampleStations(c, 2); err == nil {
		t.Error("expected an error")
	}
}

func TestSampleStationsRoundtrip(t *testing.T) {
	want := []Station{
		{Position: Pt(0, 0, 0), Front: Vec(1, 0, 0), Left: Vec(0, 0, -1), Up: Vec(0, 1, 0)},
		{Position: Pt(1, 0, 0), Front: Vec(1, 0, 0), Left: Vec(0, -1, 0), Up: Vec(0, 0, -1)},
	}
	got, err := SampleStations(PolylineFromStations(want), 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	// Resampling between the two stations interpolates the roll.
	resampled, err := SampleStations(PolylineFromStations(want), 3)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2 / 2
	diff(t, []Station{
		want[0],
		{Position: Pt(0.5, 0, 0), Front: Vec(1, 0, 0), Left: Vec(0, -s, -s), Up: Vec(0, s, -s)},
		want[1],
	}, resampled, cmpopts.EquateApprox(0, 1e-9))
}
