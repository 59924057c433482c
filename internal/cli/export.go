package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/emogo/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	OutDir string
	As     string
}

// exportResult is the JSON payload of a successful export.
type exportResult struct {
	Path     string `json:"path"`
	MIMEType string `json:"mime_type"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries to a file",
		Long: `Write every entry to emogo_export_<date>.json (or .yaml) so it can be
shared or archived. An export written earlier the same day is replaced.

Example:
  emogo export
  emogo export --out ~/Desktop --as yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportEntries(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&opts.As, "as", string(export.FormatJSON), "export format (json|yaml)")

	return cmd
}

func exportEntries(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	format, err := export.ParseFormat(opts.As)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "invalid export format", err)
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx, opts.RootOptions, formatter)
	if err != nil {
		return err
	}
	defer sess.Close()

	dir := opts.OutDir
	if dir == "" {
		dir = sess.cfg.Exports
	}

	path, err := sess.journal.Export(ctx, dir, format)
	if err != nil {
		code, exit := classify(err, ErrCodeWriteFailed)
		return formatter.Fail(exit, code, "failed to export records", err)
	}

	return formatter.SuccessText(
		exportResult{Path: path, MIMEType: format.MIMEType()},
		"Export complete: "+path,
	)
}
