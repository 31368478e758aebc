package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"bindrename/internal/cbindgen"
)

// CbindgenOptions holds flags for the cbindgen command.
type CbindgenOptions struct {
	*RootOptions
	Template string
	Output   string
}

// NewCbindgenCommand creates the cbindgen command.
func NewCbindgenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CbindgenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cbindgen",
		Short: "Merge the rename table into a cbindgen configuration template",
		Long: `Read a cbindgen.toml template, insert the rename table into its
[export.rename] section, and print the result preceded by a header noting
that the file is generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Template == "" {
				return errors.New("a template is required (--template)")
			}

			exp, err := loadSession(opts.RootOptions, cmd)
			if err != nil {
				return err
			}

			tmpl := cbindgen.NewTemplate(opts.Template)
			if err := tmpl.ReadTOML(); err != nil {
				return err
			}

			content, err := tmpl.WithBindings(exp.Bindings(opts.ForceAliases)).Render()
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), opts.Output, content)
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "cbindgen.toml template path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}
