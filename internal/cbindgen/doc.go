// Package cbindgen fills the [export.rename] section of a cbindgen
// configuration template with a rename table.
//
// Existing template content is preserved; colliding rename entries are
// overwritten by the bindings.
package cbindgen
