package cli

import (
	"github.com/spf13/cobra"
)

// VlogOptions holds flags for the vlog command.
type VlogOptions struct {
	*RootOptions
	Mood     string
	Location locationFlags
}

// NewVlogCommand creates the vlog command.
func NewVlogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VlogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "vlog <clip>",
		Short: "Save a video clip as a vlog entry",
		Long: `Save a recorded clip as a vlog entry.

The clip is copied into the media directory; the original file is left in
place. Deleting the entry later removes the copy.

Example:
  emogo vlog ~/Movies/today.mov --mood "proud"
  emogo vlog clip.mp4 --lat 35.0116 --lon 135.7681 --place "Gion, Kyoto, Japan"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveVlog(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Mood, "mood", "", "mood to attach to the vlog")
	opts.Location.register(cmd)

	return cmd
}

func saveVlog(opts *VlogOptions, clip string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	geo, err := opts.Location.options(cmd)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeBadLocation, "invalid location", err)
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx, opts.RootOptions, formatter, geo...)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, err := sess.journal.SaveVlog(ctx, opts.Mood, clip)
	if err != nil {
		code, exit := classify(err, ErrCodeClip)
		return formatter.Fail(exit, code, "failed to save vlog", err)
	}

	return formatter.SuccessText(newRecordView(rec), "Saved "+formatRecord(rec))
}
