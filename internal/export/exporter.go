package export

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"bindrename/internal/diagnostic"
	"bindrename/internal/identity"
)

// Exporter renders the mappings of a registry. It never modifies the registry.
type Exporter struct {
	reg    *identity.Registry
	logger *slog.Logger
	diags  diagnostic.Diagnostics
}

// NewExporter creates an Exporter over reg. A nil logger reuses the registry's.
func NewExporter(reg *identity.Registry, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = reg.Logger()
	}

	return &Exporter{reg: reg, logger: logger}
}

// Entry is one resolved row of the rename table.
type Entry struct {
	ID          identity.ItemID
	HostName    string
	ForeignName string
}

// Entries resolves every mapping, sorted by host name then id. Mappings
// without a usable name are skipped and reported as UNRESOLVED_NAME.
func (e *Exporter) Entries(forceAliases bool) []Entry {
	entries := make([]Entry, 0, e.reg.Len())

	for _, id := range e.reg.IDs() {
		m, _ := e.reg.Lookup(id)

		name, ok := ResolveName(m, forceAliases)
		if !ok {
			diag := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     diagnostic.CodeUnresolvedName,
				Message:  fmt.Sprintf("type %q has no valid name, skipped from rename export", m.RustName),
				Item:     fmt.Sprintf("id=%d", id),
				Detail:   spew.Sdump(*m),
			}
			e.diags.Add(diag)
			diag.Log(e.logger)

			continue
		}

		entries = append(entries, Entry{ID: id, HostName: m.RustName, ForeignName: name})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.HostName, b.HostName), cmp.Compare(a.ID, b.ID))
	})

	return entries
}

// RenderTable renders the rename table, one `"<host>" = "<foreign>"` line per entry.
func (e *Exporter) RenderTable(forceAliases bool) string {
	entries := e.Entries(forceAliases)

	var sb strings.Builder
	sb.Grow(len(entries) * 32)

	for _, entry := range entries {
		fmt.Fprintf(&sb, "%q = %q\n", entry.HostName, entry.ForeignName)
	}

	return sb.String()
}

// RenderLookup collects the rename table into a LookupBuilder whose values
// are Go string literals.
func (e *Exporter) RenderLookup(forceAliases bool) *LookupBuilder {
	b := NewLookupBuilder()
	for _, entry := range e.Entries(forceAliases) {
		b.Entry(entry.HostName, strconv.Quote(entry.ForeignName))
	}

	return b
}

// Bindings returns the rename table as a map from host name to foreign name.
func (e *Exporter) Bindings(forceAliases bool) map[string]string {
	entries := e.Entries(forceAliases)

	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		out[entry.HostName] = entry.ForeignName
	}

	return out
}

// Diagnostics returns the diagnostics recorded by previous renderings.
func (e *Exporter) Diagnostics() diagnostic.Diagnostics {
	return e.diags
}
