package cli

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"honnef.co/go/track"
)

// RootOptions holds global flags for all commands, together with the
// profile they selected.
type RootOptions struct {
	Verbose bool
	Profile string

	profile *Profile // loaded in the persistent pre-run, nil without --profile
}

// NewRootCommand creates the root command for the trackcsv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "trackcsv",
		Short: "Convert NoLimits 2 track CSV files to and from curve documents",
		Long: `trackcsv converts between the tab separated track format written by
NoLimits 2 and YAML curve documents describing the same track as a
polyline with a tilt angle per point.

Track files hold sampled stations in a y-up coordinate system. Importing
maps them into z-up curve space and recovers each station's roll
relative to the minimum twist frame of the track. Exporting samples
stations back out at uniform arc length spacing.`,
		SilenceErrors: true, // Errors are printed once, by main, with an exit code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Profile != "" {
				p, err := LoadProfile(opts.Profile)
				if err != nil {
					return WrapExitError(ExitCommandError, "loading profile", err)
				}
				opts.profile = p
				if p.Verbose {
					opts.Verbose = true
				}
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			track.SetLogger(slog.New(h).With("run", newRunToken()))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log dropped rows and other diagnostics")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "YAML file with default settings")

	// Add subcommands
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewResampleCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

// newRunToken returns an identifier tying together all log records of one
// invocation. Tokens are UUIDv7 and therefore sort by time.
func newRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
