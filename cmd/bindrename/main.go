// Package main provides the CLI entrypoint for bindrename.
//
// bindrename turns the struct/union and typedef discovery events of a
// foreign header parse into a rename table:
//   - table: the textual `"<host>" = "<foreign>"` table
//   - code: Go source embedding the table or a map[string]string
//   - cbindgen: a cbindgen.toml with the table merged into [export.rename]
package main

import (
	"fmt"
	"os"

	"bindrename/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
