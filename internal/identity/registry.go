package identity

import (
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"bindrename/internal/common"
	"bindrename/internal/diagnostic"
)

// Registry accumulates naming information for one parse session.
type Registry struct {
	// types holds one mapping per composite-found event.
	types map[ItemID]*NameMapping
	// orphans holds aliases whose target has not been discovered (yet).
	orphans map[ItemID]AliasSet

	diags  diagnostic.Diagnostics
	logger *slog.Logger
}

// NewRegistry creates an empty Registry. A nil logger discards all output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		types:   make(map[ItemID]*NameMapping),
		orphans: make(map[ItemID]AliasSet),
		logger:  logger,
	}
}

// OnCompositeFound records a struct or union. An empty originalName marks
// an anonymous type.
//
// Orphan aliases already seen for id become the candidate alias set. A named
// type drops its own tag from that set; an anonymous one promotes the first
// candidate to its foreign name. Re-discovering an id replaces the previous
// mapping and is reported as a DUPLICATE_DEFINITION warning.
func (r *Registry) OnCompositeFound(id ItemID, kind CompositeKind, originalName, hostName string) {
	aliases := r.orphans[id]
	delete(r.orphans, id)

	mapping := &NameMapping{
		Kind:     kind,
		RustName: hostName,
	}

	if originalName != "" {
		mapping.CName = &CName{Identifier: originalName}
		aliases.Remove(mapping.CName.Identifier)
		aliases.Remove(mapping.CName.Canonical(kind))
	} else if first, ok := aliases.PopFirst(); ok {
		mapping.CName = &CName{Identifier: first, Aliased: true}
	}

	mapping.Aliases = aliases

	r.logger.Debug("composite found",
		slog.Uint64("id", uint64(id)),
		slog.String("kind", kind.String()),
		slog.String("original", originalName),
		slog.String("c_name", mapping.CanonicalName()),
	)

	if previous, ok := r.types[id]; ok {
		r.warn(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeDuplicateDefinition,
			Message:  fmt.Sprintf("duplicated definition for %q, previous mapping overwritten", hostName),
			Item:     itemRef(id),
			Detail:   spew.Sdump(*previous),
		})
	}

	r.types[id] = mapping
}

// OnAliasFound records alias as another name of target.
//
// When target is unknown the alias is parked until the composite arrives.
// An anonymous target without a name takes the alias as its name; if it
// already has an aliased name, the smaller of the two keeps that role so the
// outcome does not depend on event order. Aliases equal to a named type's tag
// are ignored.
func (r *Registry) OnAliasFound(alias string, target ItemID) {
	mapping, ok := r.types[target]
	if !ok {
		orphans := r.orphans[target]
		orphans.Add(alias)
		r.orphans[target] = orphans

		return
	}

	switch {
	case mapping.CName == nil:
		mapping.CName = &CName{Identifier: alias, Aliased: true}
	case mapping.isTagName(alias):
		r.logger.Debug("alias repeats tag name",
			slog.Uint64("id", uint64(target)),
			slog.String("alias", alias),
		)
	case mapping.CName.Aliased && alias < mapping.CName.Identifier:
		mapping.Aliases.Add(mapping.CName.Identifier)
		mapping.CName = &CName{Identifier: alias, Aliased: true}
	case alias != mapping.CName.Identifier:
		mapping.Aliases.Add(alias)
	}
}

// ForgetUnusedAliases drops every orphan alias and returns how many were
// dropped. A non-zero count is reported as an ORPHAN_ALIASES warning.
func (r *Registry) ForgetUnusedAliases() int {
	count := 0
	for _, id := range common.SortedKeys(r.orphans) {
		orphans := r.orphans[id]
		count += orphans.Len()

		r.logger.Debug("unused aliases",
			slog.Uint64("target", uint64(id)),
			slog.Any("aliases", orphans.Values()),
		)
	}

	clear(r.orphans)

	if count > 0 {
		r.warn(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeOrphanAliases,
			Message:  fmt.Sprintf("%d alias(es) never matched a discovered type", count),
		})
	}

	return count
}

// Lookup returns the mapping stored for id. The mapping must not be modified.
func (r *Registry) Lookup(id ItemID) (*NameMapping, bool) {
	m, ok := r.types[id]
	return m, ok
}

// Len returns the number of discovered composite types.
func (r *Registry) Len() int {
	return len(r.types)
}

// IDs returns the ids of all discovered composite types in ascending order.
func (r *Registry) IDs() []ItemID {
	return common.SortedKeys(r.types)
}

// OrphanCount returns the number of aliases still waiting for their target.
func (r *Registry) OrphanCount() int {
	n := 0
	for _, set := range r.orphans {
		n += set.Len()
	}

	return n
}

// OrphanTargets returns the ids that have parked aliases, in ascending order.
func (r *Registry) OrphanTargets() []ItemID {
	return common.SortedKeys(r.orphans)
}

// Diagnostics returns the diagnostics recorded so far.
func (r *Registry) Diagnostics() diagnostic.Diagnostics {
	return r.diags
}

// Logger returns the logger the registry reports to.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

func (r *Registry) warn(d diagnostic.Diagnostic) {
	r.diags.Add(d)
	d.Log(r.logger)
}

func itemRef(id ItemID) string {
	return fmt.Sprintf("id=%d", id)
}
