package export

import (
	"strconv"
	"strings"

	"bindrename/internal/common"
)

// LookupBuilder accumulates key/value pairs for a read-only Go map literal.
// Values are Go expressions, inserted verbatim.
type LookupBuilder struct {
	entries map[string]string
}

// NewLookupBuilder creates an empty LookupBuilder.
func NewLookupBuilder() *LookupBuilder {
	return &LookupBuilder{entries: make(map[string]string)}
}

// Entry adds key with the already formatted value. A repeated key replaces
// the earlier value, since a map literal cannot hold duplicate keys.
func (b *LookupBuilder) Entry(key, value string) *LookupBuilder {
	b.entries[key] = value
	return b
}

// Len returns the number of distinct keys.
func (b *LookupBuilder) Len() int {
	return len(b.entries)
}

// Build renders a map[string]string composite literal with keys in
// ascending order. The result is not gofmt-aligned.
func (b *LookupBuilder) Build() string {
	if b.Len() == 0 {
		return "map[string]string{}"
	}

	var sb strings.Builder
	sb.WriteString("map[string]string{\n")

	for _, key := range common.SortedKeys(b.entries) {
		sb.WriteString("\t")
		sb.WriteString(strconv.Quote(key))
		sb.WriteString(": ")
		sb.WriteString(b.entries[key])
		sb.WriteString(",\n")
	}

	sb.WriteString("}")

	return sb.String()
}
