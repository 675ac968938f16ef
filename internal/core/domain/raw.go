package domain

// RawDocument is the full OCR transcript of one registry form.
// Multi-page transcripts are concatenated by the caller before they reach
// the extractor; page markers are treated as ordinary text.
type RawDocument struct {
	// SourceID identifies where the transcript came from (usually the
	// path of the scanned file). Persisted as the document trace.
	SourceID string

	// URI is the location the transcript was read from, if any.
	URI string

	// Text is the transcript as produced by the OCR engine.
	Text string
}
