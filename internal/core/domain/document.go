package domain

// Document is a transcript after text normalisation.
// It is the canonical input of the field extractor.
type Document struct {
	// SourceID links back to the RawDocument's source.
	SourceID string

	// URI is the original location (file path, stdin, etc).
	URI string

	// Content is the normalised transcript.
	Content string
}
