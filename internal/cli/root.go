package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Events       string // event stream file
	ForceAliases bool
	LogLevel     string // "debug" | "info" | "warn" | "error"
	LogFormat    string // "text" | "json"
}

// Allowed values of the logging flags.
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"text", "json"}
)

// NewRootCommand creates the root command of the bindrename CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bindrename",
		Short: "Export rename tables for foreign composite types",
		Long: `bindrename replays the struct/union and typedef discovery events of a
header parse and exports the resulting rename table, either as text, as Go
source, or merged into a cbindgen configuration template.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidLogLevels, opts.LogLevel) {
				return fmt.Errorf("invalid log level %q: must be one of %v", opts.LogLevel, ValidLogLevels)
			}

			if !slices.Contains(ValidLogFormats, opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Events, "events", "e", "", "event stream file (YAML or JSON)")
	cmd.PersistentFlags().BoolVarP(&opts.ForceAliases, "aliases", "a", false, "prefer aliases over tag names")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewCodeCommand(opts))
	cmd.AddCommand(NewCbindgenCommand(opts))

	return cmd
}
