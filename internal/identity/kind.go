package identity

import (
	"fmt"
	"strings"
)

// ItemID is the opaque handle the header parser assigns to each discovered entity.
type ItemID uint64

//go:generate go tool stringer -type=CompositeKind -linecomment -output=kind_string.go

// CompositeKind distinguishes structs from unions.
type CompositeKind int

const (
	_ CompositeKind = iota // zero value is not a valid kind

	KindStruct // struct
	KindUnion  // union
)

// Prefix returns the tag keyword, including the trailing space, that names
// a declared composite on the foreign side ("struct Foo", "union Bar").
func (k CompositeKind) Prefix() string {
	switch k {
	case KindStruct:
		return "struct "
	case KindUnion:
		return "union "
	default:
		return ""
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k CompositeKind) IsValid() bool {
	return k == KindStruct || k == KindUnion
}

// ParseKind parses "struct" or "union", ignoring case and surrounding space.
func ParseKind(s string) (CompositeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "struct":
		return KindStruct, nil
	case "union":
		return KindUnion, nil
	default:
		return 0, fmt.Errorf("unknown composite kind %q", s)
	}
}
