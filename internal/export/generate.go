package export

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"
)

var (
	// ErrInvalidVariableName is returned when the requested variable name is not a Go identifier.
	ErrInvalidVariableName = errors.New("invalid variable name")
	// ErrInvalidPackageName is returned when the requested package name is not a Go identifier.
	ErrInvalidPackageName = errors.New("invalid package name")
)

// Options controls Generate.
type Options struct {
	// ForceAliasesUse exports the first alias of a type instead of its tag name when it has one.
	ForceAliasesUse bool
	// AsStaticMap renders a map[string]string literal instead of the textual table.
	AsStaticMap bool
	// VariableName binds the value to a declaration. Empty emits the bare value.
	VariableName string
}

// FileOptions controls GenerateFile.
type FileOptions struct {
	Options
	// PackageName is the package clause of the generated file.
	PackageName string
}

// DefaultFileOptions returns the options used by GenerateFile callers that
// only care about the data.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Options: Options{
			AsStaticMap:  true,
			VariableName: "Bindings",
		},
		PackageName: "bindings",
	}
}

// declData holds the data for declTemplate.
type declData struct {
	PackageName  string
	Keyword      string
	VariableName string
	Value        string
}

var declTemplate = template.Must(template.New("decl").Parse(
	`{{if .PackageName}}// Code generated by bindrename. DO NOT EDIT.

package {{.PackageName}}

// {{.VariableName}} maps binding identifiers to their foreign names.
{{end}}{{.Keyword}} {{.VariableName}} = {{.Value}}
`))

// bareValuePrefix wraps a bare expression so go/format accepts it.
const bareValuePrefix = "var _ = "

// Generate renders the registry as a Go source fragment: a bare value, or a
// const (table) / var (map) declaration when VariableName is set.
func (e *Exporter) Generate(opts Options) (string, error) {
	value, keyword := e.value(opts)

	if opts.VariableName == "" {
		formatted, err := formatSource(bareValuePrefix + value + "\n")
		if err != nil {
			return "", err
		}

		return strings.TrimPrefix(string(formatted), bareValuePrefix), nil
	}

	if !token.IsIdentifier(opts.VariableName) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariableName, opts.VariableName)
	}

	out, err := render(declData{
		Keyword:      keyword,
		VariableName: opts.VariableName,
		Value:        value,
	})
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// GenerateFile renders a complete Go file declaring the rename table.
// An empty VariableName falls back to the default one.
func (e *Exporter) GenerateFile(opts FileOptions) ([]byte, error) {
	if !token.IsIdentifier(opts.PackageName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackageName, opts.PackageName)
	}

	if opts.VariableName == "" {
		opts.VariableName = DefaultFileOptions().VariableName
	}

	if !token.IsIdentifier(opts.VariableName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariableName, opts.VariableName)
	}

	value, keyword := e.value(opts.Options)

	return render(declData{
		PackageName:  opts.PackageName,
		Keyword:      keyword,
		VariableName: opts.VariableName,
		Value:        value,
	})
}

// value returns the Go expression for the selected rendering and the
// declaration keyword that can bind it.
func (e *Exporter) value(opts Options) (string, string) {
	if opts.AsStaticMap {
		return e.RenderLookup(opts.ForceAliasesUse).Build(), "var"
	}

	return stringLiteral(e.RenderTable(opts.ForceAliasesUse)), "const"
}

func render(data declData) ([]byte, error) {
	var buf bytes.Buffer
	if err := declTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return formatSource(buf.String())
}

func formatSource(src string) ([]byte, error) {
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

// stringLiteral quotes s as a raw string literal when it can, so the table
// stays readable in the generated source.
func stringLiteral(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}

	return "`" + s + "`"
}
