package track_test

import (
	"fmt"
	"log"
	"strings"

	"honnef.co/go/track"
)

func Example() {
	// A short, straight piece of track headed along the x axis, with no
	// banking. Fields are tab-separated in the real format; we use spaces
	// here to keep the example readable.
	const input = `"No." "PosX" "PosY" "PosZ" "FrontX" "FrontY" "FrontZ" "LeftX" "LeftY" "LeftZ" "UpX" "UpY" "UpZ"
1 0 0 0 1 0 0 0 0 -1 0 1 0
2 1 0 0 1 0 0 0 0 -1 0 1 0
3 2 0 0 1 0 0 0 0 -1 0 1 0`

	stations, err := track.ReadStations(strings.NewReader(strings.ReplaceAll(input, " ", "\t")))
	if err != nil {
		log.Fatal(err)
	}

	line := track.PolylineFromStations(stations)
	for _, pt := range line {
		fmt.Printf("%v tilt=%g\n", pt.Position, pt.Tilt)
	}

	// Sampling at the native point count reproduces the stations we read.
	out, err := track.SampleStations(line, 0)
	if err != nil {
		log.Fatal(err)
	}
	var buf strings.Builder
	if err := track.WriteStations(&buf, out); err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.ReplaceAll(buf.String(), "\t", " "))

	// Output:
	// (0, 0, 0) tilt=0
	// (1, 0, 0) tilt=0
	// (2, 0, 0) tilt=0
	// "No." "PosX" "PosY" "PosZ" "FrontX" "FrontY" "FrontZ" "LeftX" "LeftY" "LeftZ" "UpX" "UpY" "UpZ"
	// 1 0 0 0 1 0 0 0 0 -1 0 1 0
	// 2 1 0 0 1 0 0 0 0 -1 0 1 0
	// 3 2 0 0 1 0 0 0 0 -1 0 1 0
}
