package cli

import (
	"github.com/spf13/cobra"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Output string
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the rename table",
		Long: `Print one "<host>" = "<foreign>" line per resolved type, suitable as the
body of a cbindgen [export.rename] section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := loadSession(opts.RootOptions, cmd)
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), opts.Output, []byte(exp.RenderTable(opts.ForceAliases)))
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}
