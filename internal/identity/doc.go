// Package identity resolves the naming identity of foreign composite types
// (structs and unions) discovered incrementally while a header is parsed.
//
// The Registry consumes two kinds of events, in whatever order the parser
// emits them:
//   - composite found: a struct/union with an item id, an optional tag name
//     and the host-side identifier the binding generator gave it
//   - alias found: a typedef name pointing at an item id that may or may not
//     have been discovered yet
//
// Aliases that arrive before their target are parked as orphans and claimed
// when the composite shows up, so both arrival orders converge on the same
// NameMapping. Anonymous types take their foreign name from the
// lexicographically smallest alias known for them.
//
// A Registry is single-writer: events must be delivered serially.
package identity
