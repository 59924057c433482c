package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry and its clip",
		Long: `Delete an entry by id. For vlogs the copied clip is removed as well;
a clip that cannot be removed is reported in the log but does not fail the command.

Example:
  emogo delete 12`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteEntry(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func deleteEntry(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return formatter.Fail(ExitFailure, ErrCodeBadID, fmt.Sprintf("invalid record id %q", arg), nil)
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx, opts, formatter)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, err := sess.journal.Remove(ctx, id)
	if err != nil {
		code, exit := classify(err, ErrCodeStore)
		return formatter.Fail(exit, code, "failed to delete record", err)
	}

	return formatter.SuccessText(newRecordView(rec), fmt.Sprintf("Deleted #%d", rec.ID))
}
