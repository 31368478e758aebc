package identity

import (
	"slices"

	"bindrename/internal/common"
)

// AliasSet is a deduplicated set of names kept in lexicographic order.
// The zero value is an empty set ready to use.
type AliasSet struct {
	values []string
}

// NewAliasSet builds a set from values, dropping duplicates.
func NewAliasSet(values ...string) AliasSet {
	var s AliasSet
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Add inserts v and reports whether it was not already present.
func (s *AliasSet) Add(v string) bool {
	i, found := slices.BinarySearch(s.values, v)
	if found {
		return false
	}

	s.values = slices.Insert(s.values, i, v)

	return true
}

// Remove deletes v and reports whether it was present.
func (s *AliasSet) Remove(v string) bool {
	i, found := slices.BinarySearch(s.values, v)
	if !found {
		return false
	}

	s.values = slices.Delete(s.values, i, i+1)
	s.compact()

	return true
}

// Contains reports whether v is in the set.
func (s AliasSet) Contains(v string) bool {
	_, found := slices.BinarySearch(s.values, v)
	return found
}

// First returns the smallest name in the set.
func (s AliasSet) First() (string, bool) {
	return common.First(s.values)
}

// PopFirst removes and returns the smallest name in the set.
func (s *AliasSet) PopFirst() (string, bool) {
	first, ok := s.First()
	if !ok {
		return "", false
	}

	s.values = s.values[1:]
	s.compact()

	return first, true
}

// Len returns the number of names in the set.
func (s AliasSet) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the set holds no names.
func (s AliasSet) IsEmpty() bool {
	return common.IsEmpty(s.values)
}

// Values returns the names in order. The result is a copy; nil when empty.
func (s AliasSet) Values() []string {
	if s.IsEmpty() {
		return nil
	}

	return slices.Clone(s.values)
}

// compact resets an emptied set to its zero value so equal sets compare equal.
func (s *AliasSet) compact() {
	if len(s.values) == 0 {
		s.values = nil
	}
}
