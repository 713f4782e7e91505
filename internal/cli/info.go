package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"honnef.co/go/track"
)

// InfoOptions holds flags for the info command.
type InfoOptions struct {
	*RootOptions
	Frames bool
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InfoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "info <track.csv|curve.yaml>",
		Short: "Print a summary of a track",
		Long: `Info prints a summary of a track: its point count, arc length, bounding
box and tilt range. The input may be a track CSV file or a curve
document, told apart by file extension. Geometry is reported in z-up
curve space, tilt in radians.

With --frames, the reconstructed station frames are listed too, back in
the y-up space of track files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Frames, "frames", false, "list the reconstructed station frames")

	return cmd
}

func runInfo(opts *InfoOptions, path string, cmd *cobra.Command) error {
	line, label, err := loadCurve(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-9s %d\n", label+":", line.PointCount())
	fmt.Fprintf(w, "%-9s %g\n", "Length:", line.Length())
	b := line.BoundingBox()
	fmt.Fprintf(w, "%-9s %v to %v\n", "Bounds:",
		track.Pt(b.MinX(), b.MinY(), b.MinZ()),
		track.Pt(b.MaxX(), b.MaxY(), b.MaxZ()))
	lo, hi := tiltRange(line)
	fmt.Fprintf(w, "%-9s %g to %g\n", "Tilt:", lo, hi)

	if opts.Frames {
		stations, err := track.SampleStations(line, 0)
		if err != nil {
			return WrapExitError(ExitFailure, "sampling stations", err)
		}
		fmt.Fprintln(w, "Frames:")
		for i, s := range stations {
			fmt.Fprintf(w, "%5d: %v front %v left %v up %v\n", i+1, s.Position, s.Front, s.Left, s.Up)
		}
	}
	return nil
}

// loadCurve reads either input format, told apart by file extension, and
// returns the polyline along with the label for its point count.
func loadCurve(path string) (track.Polyline, string, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, "", err
		}
		line, err := doc.Polyline()
		if err != nil {
			return nil, "", err
		}
		return line, "Points", nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, "", WrapExitError(ExitCommandError, "opening track file", err)
		}
		defer f.Close()
		stations, err := track.ReadStations(f)
		if err != nil {
			return nil, "", WrapExitError(ExitFailure, "reading track file", err)
		}
		if len(stations) == 0 {
			return nil, "", NewExitError(ExitCommandError, fmt.Sprintf("no stations found in %s", path))
		}
		return track.PolylineFromStations(stations), "Stations", nil
	}
}

func tiltRange(line track.Polyline) (lo, hi float64) {
	lo, hi = line[0].Tilt, line[0].Tilt
	for _, cp := range line[1:] {
		lo = min(lo, cp.Tilt)
		hi = max(hi, cp.Tilt)
	}
	return lo, hi
}
