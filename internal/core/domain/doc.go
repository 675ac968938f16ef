// Package domain defines the core business entities for registro.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: The OCR transcript of one registry form
//   - Document: A transcript after text normalisation
//   - Record: The twelve extracted form fields, in form order
//   - Extraction: A Record plus per-field provenance
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
