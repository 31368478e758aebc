// Package export renders a finished identity.Registry as a rename table.
//
// Two renderings are supported:
//   - a textual table, one `"<host>" = "<foreign>"` line per type, ready to
//     become the body of a cbindgen [export.rename] section
//   - a Go map literal from host name to foreign name, built through a
//     LookupBuilder, for embedding in generated source
//
// Generate and GenerateFile wrap either rendering in gofmt-formatted Go
// source, optionally bound to a named constant or variable.
package export
