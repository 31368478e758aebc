// Package diagnostic provides the non-fatal diagnostics channel shared by the
// identity registry and the rename exporter.
//
// Diagnostics never travel through error returns. They are recorded with a
// stable code and, when a logger is attached, mirrored to slog:
//   - DUPLICATE_DEFINITION: the same item id was discovered twice
//   - UNRESOLVED_NAME: an anonymous type never received an alias
//   - ORPHAN_ALIASES: aliases whose target type was never discovered
package diagnostic
