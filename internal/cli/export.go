package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"honnef.co/go/track"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output            string
	Points            int
	LegacyOrientation bool
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <curve.yaml>",
		Short: "Convert a curve document to a track CSV file",
		Long: `Export reads a curve document and writes a track file for it. Stations
are sampled at uniform arc length spacing; their orientation combines
the minimum twist frame of the track with the interpolated tilt at each
offset.

Old exporters left the front and left columns zeroed. Pass
--legacy-orientation to reproduce such files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the CSV to a file instead of stdout")
	cmd.Flags().IntVarP(&opts.Points, "points", "n", 0, "number of stations to sample (0 keeps the native point count)")
	cmd.Flags().BoolVar(&opts.LegacyOrientation, "legacy-orientation", false, "write zeroed front and left columns like old exporters")

	return cmd
}

func runExport(opts *ExportOptions, path string, cmd *cobra.Command) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	line, err := doc.Polyline()
	if err != nil {
		return err
	}

	count := opts.Points
	if !cmd.Flags().Changed("points") && opts.profile != nil {
		count = opts.profile.PointCount
	}
	if count < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid point count %d", count))
	}
	legacy := opts.LegacyOrientation
	if !cmd.Flags().Changed("legacy-orientation") && opts.profile != nil {
		legacy = opts.profile.LegacyOrientation
	}

	stations, err := track.SampleStations(line, count)
	if err != nil {
		return WrapExitError(ExitFailure, "sampling stations", err)
	}
	if legacy {
		zeroOrientation(stations)
	}

	return writeOutput(cmd, opts.Output, func(w io.Writer) error {
		return track.WriteStations(w, stations)
	})
}

// zeroOrientation blanks the front and left vectors of every station,
// matching files written by exporters that predate full orientation
// output.
func zeroOrientation(stations []track.Station) {
	for i := range stations {
		stations[i].Front = track.Vec3{}
		stations[i].Left = track.Vec3{}
	}
}
