package cbindgen

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrMissingBindings is returned when no bindings were provided.
	ErrMissingBindings = errors.New("template is missing bindings")
	// ErrDocumentNotRead is returned when the template document was never loaded.
	ErrDocumentNotRead = errors.New("template was not read before its use")
	// ErrInvalidSourcePath is returned when the template path cannot be printed in the header.
	ErrInvalidSourcePath = errors.New("template has an invalid source path")
	// ErrNotATable is returned when export or export.rename exists but is not a table.
	ErrNotATable = errors.New("template key is not a table")
)

// Section names of the rename table.
const (
	exportKey = "export"
	renameKey = "rename"
)

// Template is a cbindgen.toml template.
type Template struct {
	path     string
	doc      map[string]any
	bindings map[string]string
}

// NewTemplate remembers the template path. Nothing is read until ReadTOML.
func NewTemplate(path string) *Template {
	return &Template{path: path}
}

// ReadTOML loads the template path as a TOML document.
func (t *Template) ReadTOML() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", t.path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse template %s: %w", t.path, err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	t.doc = doc

	return nil
}

// UseDocument sets the document directly instead of reading it from disk.
// The path given to NewTemplate is then only used in the header.
func (t *Template) UseDocument(doc map[string]any) *Template {
	t.doc = doc
	return t
}

// WithBindings sets the rename table, host name to foreign name.
func (t *Template) WithBindings(bindings map[string]string) *Template {
	t.bindings = bindings
	return t
}

// GenerateTOML returns the template document with the bindings merged into
// its [export.rename] table. The template itself is not modified.
func (t *Template) GenerateTOML() ([]byte, error) {
	if t.bindings == nil {
		return nil, ErrMissingBindings
	}

	if t.doc == nil {
		return nil, ErrDocumentNotRead
	}

	doc := maps.Clone(t.doc)

	export, err := subTable(doc, exportKey)
	if err != nil {
		return nil, err
	}

	renames, err := subTable(export, renameKey)
	if err != nil {
		return nil, err
	}

	for host, foreign := range t.bindings {
		renames[host] = foreign
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}

	return out, nil
}

// ConfigHeader returns the comment block marking the configuration as generated.
func (t *Template) ConfigHeader() (string, error) {
	if t.path == "" || !utf8.ValidString(t.path) {
		return "", ErrInvalidSourcePath
	}

	return "# This configuration file has been automatically generated\n" +
		"# Do not modify it manually, your changes will be lost. " +
		"Instead, make changes to its associated template : " + t.path + "\n\n", nil
}

// Render returns the header followed by the generated TOML.
func (t *Template) Render() ([]byte, error) {
	header, err := t.ConfigHeader()
	if err != nil {
		return nil, err
	}

	body, err := t.GenerateTOML()
	if err != nil {
		return nil, err
	}

	return append([]byte(header), body...), nil
}

// subTable returns a copy of parent[key] stored back into parent, creating
// an empty table when the key is absent.
func subTable(parent map[string]any, key string) (map[string]any, error) {
	existing, ok := parent[key]
	if !ok {
		table := map[string]any{}
		parent[key] = table

		return table, nil
	}

	table, ok := existing.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrNotATable, key, existing)
	}

	table = maps.Clone(table)
	parent[key] = table

	return table, nil
}
