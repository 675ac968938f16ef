package domain

import "time"

// SourceTrace records that a record was saved from a given source.
type SourceTrace struct {
	// ID is the unique identifier of the trace.
	ID string

	// DNI is the record the trace belongs to.
	DNI string

	// Kind is how the record was produced (always "OCR" for now).
	Kind string

	// SourceID is the path or identifier of the scanned document.
	SourceID string

	// CreatedAt is when the record was saved.
	CreatedAt time.Time
}
