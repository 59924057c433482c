package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List entries, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntries(rootOpts, cmd)
		},
	}

	return cmd
}

func listEntries(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ctx := commandContext(cmd)
	sess, err := openSession(ctx, opts, formatter)
	if err != nil {
		return err
	}
	defer sess.Close()

	records, err := sess.journal.History(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to load records", err)
	}

	return formatter.SuccessText(newRecordViews(records), formatRecords(records))
}
