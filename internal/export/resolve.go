package export

import "bindrename/internal/identity"

// ResolveName picks the foreign name exported for m.
//
// Anonymous types, and every type with aliases when forceAliases is set,
// export their first alias. Otherwise the canonical foreign name is used.
// It reports false when no name is available.
func ResolveName(m *identity.NameMapping, forceAliases bool) (string, bool) {
	if m.CName == nil || (forceAliases && !m.Aliases.IsEmpty()) {
		return m.Aliases.First()
	}

	return m.CName.Canonical(m.Kind), true
}
