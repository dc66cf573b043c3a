// Package file provides a TOML file-based configuration store.
//
// Configuration lives in ~/.docshub/config.toml by default. Nested
// tables are flattened to dot-notation keys, so
//
//	[backend]
//	url = "http://localhost:8000"
//
// is read as "backend.url".
package file
