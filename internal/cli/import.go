package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/track"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Output string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <track.csv>",
		Short: "Convert a track CSV file to a curve document",
		Long: `Import reads a tab separated track file as exported by NoLimits 2 and
writes a curve document for it. Station positions are mapped into z-up
curve space, and each station's up vector becomes a tilt angle relative
to the minimum twist frame along the track.

Rows that don't parse, including the column header row, are dropped;
run with --verbose to see them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the document to a file instead of stdout")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening track file", err)
	}
	defer f.Close()

	stations, err := track.ReadStations(f)
	if err != nil {
		return WrapExitError(ExitFailure, "reading track file", err)
	}
	if len(stations) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no stations found in %s", path))
	}

	doc := NewDocument(track.PolylineFromStations(stations))
	return writeOutput(cmd, opts.Output, doc.Write)
}
