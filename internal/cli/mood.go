package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// MoodOptions holds flags for the mood command.
type MoodOptions struct {
	*RootOptions
	Location locationFlags
}

// NewMoodCommand creates the mood command.
func NewMoodCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MoodOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mood <text>",
		Short: "Record a mood-only entry",
		Long: `Record how you feel right now, without a clip.

The mood is trimmed and limited to 200 characters. Pass --lat and --lon to
geotag the entry, and --place to label the location.

Example:
  emogo mood "calm after the run"
  emogo mood tired --lat 25.033 --lon 121.5654 --place "Taipei"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveMood(opts, strings.Join(args, " "), cmd)
		},
	}

	opts.Location.register(cmd)

	return cmd
}

func saveMood(opts *MoodOptions, mood string, cmd *cobra.Command) error {
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

	rec, err := sess.journal.SaveMood(ctx, mood)
	if err != nil {
		code, exit := classify(err, ErrCodeStore)
		return formatter.Fail(exit, code, "failed to save mood", err)
	}

	return formatter.SuccessText(newRecordView(rec), "Saved "+formatRecord(rec))
}
