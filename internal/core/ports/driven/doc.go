// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Canonicalises an OCR transcript
//   - FieldExtractor: Turns a transcript into a Record
//   - RecordStore: Record persistence, keyed by DNI
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TextFixupPipeline: Extra OCR corrections applied before extraction.
//     Without it, only the extractor's built-in corrections run.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor, or normaliser package
package driven
