package identity

// NameMapping is the resolved (or still provisional) naming record of one
// discovered composite type.
type NameMapping struct {
	// Kind of the composite.
	Kind CompositeKind
	// CName is nil while the type is anonymous and no alias is known yet.
	CName *CName
	// RustName is the host-side identifier assigned by the binding generator.
	RustName string
	// Aliases holds the other names known for the type. It never contains
	// the tag of a named type, neither bare nor prefixed.
	Aliases AliasSet
}

// IsAnonymous reports whether the type has no foreign name yet.
func (m *NameMapping) IsAnonymous() bool {
	return m.CName == nil
}

// CanonicalName returns the foreign name stored in CName, or "" when anonymous.
func (m *NameMapping) CanonicalName() string {
	if m.CName == nil {
		return ""
	}

	return m.CName.Canonical(m.Kind)
}

// isTagName reports whether name is the declared tag of the type, in either
// its bare or its prefixed form.
func (m *NameMapping) isTagName(name string) bool {
	if m.CName == nil || m.CName.Aliased {
		return false
	}

	return name == m.CName.Identifier || name == m.CName.Canonical(m.Kind)
}
