package track

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// stationColumns is the number of tab-separated columns in a station row:
// a running index followed by four vectors of three components each.
const stationColumns = 13

const stationHeader = "\"No.\"\t\"PosX\"\t\"PosY\"\t\"PosZ\"\t\"FrontX\"\t\"FrontY\"\t\"FrontZ\"\t\"LeftX\"\t\"LeftY\"\t\"LeftZ\"\t\"UpX\"\t\"UpY\"\t\"UpZ\""

// Station is one row of a track CSV file: a sampled point on the track
// together with its orientation, expressed in the y-up coordinate system
// used by NoLimits 2.
type Station struct {
	Position Point
	Front    Vec3
	Left     Vec3
	Up       Vec3
}

// Frame converts the station to a frame in z-up curve space. It is the
// inverse of [Frame.Station].
func (s Station) Frame() Frame {
	return Frame{
		Position: s.Position,
		Front:    s.Front,
		Left:     s.Left,
		Up:       s.Up,
	}.Transform(YUpToZUp)
}

// ReadStations parses a table of track stations as exported by NoLimits 2:
// one tab-separated row per station, holding a running index followed by the
// position, front, left and up vectors. The index column is ignored.
//
// The format has no distinguished header row. Rows that have fewer than 13
// columns or hold values that don't parse as floats, which includes the
// quoted column titles an exporter may emit, are dropped rather than
// reported as errors. Dropped rows are visible through [SetLogger].
//
// An error is only returned when reading from r fails.
func ReadStations(r io.Reader) ([]Station, error) {
	var stations []Station
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		row := sc.Text()
		if row == "" {
			continue
		}
		fields := strings.Split(row, "\t")
		if len(fields) < stationColumns {
			Logger().Warn("dropping truncated station row", "line", line, "columns", len(fields))
			continue
		}
		var vals [stationColumns - 1]float64
		ok := true
		for i := range vals {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64)
			if err != nil {
				Logger().Debug("dropping unparsable station row", "line", line, "column", i+1, "err", err)
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		stations = append(stations, Station{
			Position: Pt(vals[0], vals[1], vals[2]),
			Front:    Vec(vals[3], vals[4], vals[5]),
			Left:     Vec(vals[6], vals[7], vals[8]),
			Up:       Vec(vals[9], vals[10], vals[11]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stations: %w", err)
	}
	return stations, nil
}

// WriteStations writes stations as a track CSV table to w: a quoted header
// row followed by one tab-separated row per station, numbered from 1. Rows
// are joined with newlines without a trailing one, matching the files the
// game's own exporter produces.
func WriteStations(w io.Writer, stations []Station) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if n == 0 {
			// Avoid serializing negative zero.
			n = 0
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	writef("%s", stationHeader)
	for i, s := range stations {
		writef("\n%d", i+1)
		for _, n := range [stationColumns - 1]float64{
			s.Position.X, s.Position.Y, s.Position.Z,
			s.Front.X, s.Front.Y, s.Front.Z,
			s.Left.X, s.Left.Y, s.Left.Z,
			s.Up.X, s.Up.Y, s.Up.Z,
		} {
			writef("\t%s", format(n))
		}
	}
	return err
}
