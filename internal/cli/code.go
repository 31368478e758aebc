package cli

import (
	"github.com/spf13/cobra"

	"bindrename/internal/export"
)

// CodeOptions holds flags for the code command.
type CodeOptions struct {
	*RootOptions
	StaticMap    bool
	VariableName string
	PackageName  string
	Output       string
}

// NewCodeCommand creates the code command.
func NewCodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate Go source embedding the rename table",
		Long: `Generate Go source for the rename table, either as a string constant
holding the textual table or as a map[string]string (--static-map).

Without --package a fragment is produced: the bare value, or a declaration
when --var is set. With --package a complete file is produced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCode(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.StaticMap, "static-map", false, "render a map[string]string instead of the textual table")
	cmd.Flags().StringVar(&opts.VariableName, "var", "", "name of the generated constant or variable")
	cmd.Flags().StringVar(&opts.PackageName, "package", "", "generate a complete file in this package")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}

func runCode(opts *CodeOptions, cmd *cobra.Command) error {
	exp, err := loadSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	genOpts := export.Options{
		ForceAliasesUse: opts.ForceAliases,
		AsStaticMap:     opts.StaticMap,
		VariableName:    opts.VariableName,
	}

	var content []byte

	if opts.PackageName != "" {
		content, err = exp.GenerateFile(export.FileOptions{Options: genOpts, PackageName: opts.PackageName})
	} else {
		var fragment string
		fragment, err = exp.Generate(genOpts)
		content = []byte(fragment)
	}

	if err != nil {
		return err
	}

	return emit(cmd.OutOrStdout(), opts.Output, content)
}
