// Package domain defines the core business entities for Docs Hub.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A full document as returned by the detail endpoint
//   - DocumentSummary: The list-endpoint subset used for card rendering
//   - Draft: An in-progress, unsaved document
//   - Category: The fixed category set with graceful fallback
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
