package identity

import "strings"

// CName is a foreign-side name candidate for a composite type.
type CName struct {
	// Identifier is the raw name, either the declared tag or an alias.
	Identifier string
	// Aliased is set when Identifier came from a typedef rather than the
	// type's own tag. Aliased names never receive the struct/union prefix.
	Aliased bool
}

// Canonical returns the name the foreign language uses to refer to the type.
func (c CName) Canonical(kind CompositeKind) string {
	if c.Aliased {
		return c.Identifier
	}

	return CanonicalName(kind, c.Identifier)
}

// CanonicalName prefixes a bare tag name with its kind keyword, unless the
// name already carries that exact prefix.
func CanonicalName(kind CompositeKind, tag string) string {
	prefix := kind.Prefix()
	if strings.HasPrefix(tag, prefix) {
		return tag
	}

	return prefix + tag
}
