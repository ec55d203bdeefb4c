// Package data carries the bundled vPIC snapshot. The file is a
// self-contained SQLite image produced by `vin rebuild` from NHTSA
// vPIC extracts; the library only ever reads it.
package data

import _ "embed"

//go:embed vpic.db
var vpicDB []byte

// VpicDB returns the embedded snapshot image.
func VpicDB() []byte { return vpicDB }
