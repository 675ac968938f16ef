package driving

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// ExtractionService turns OCR transcripts into records.
type ExtractionService interface {
	// Normalise canonicalises a transcript and applies the enabled text
	// fix-ups. The result is the text the field extractor reads.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)

	// Extract reads the form fields of one transcript.
	Extract(ctx context.Context, raw *domain.RawDocument) (*ExtractionResult, error)

	// ExtractBatch extracts many transcripts concurrently. Results are in
	// input order; a failed transcript carries its error and does not stop
	// the others. The returned error is non-nil only when ctx ends first.
	ExtractBatch(ctx context.Context, raws []domain.RawDocument) ([]BatchItem, error)

	// Save validates and persists an extracted record under its source.
	Save(ctx context.Context, result *ExtractionResult) error
}

// ExtractionResult is the outcome of extracting one transcript.
type ExtractionResult struct {
	// SourceID identifies the transcript (usually its path).
	SourceID string

	// Extraction holds the record and per-field provenance.
	Extraction domain.Extraction
}

// Record returns the extracted record.
func (r *ExtractionResult) Record() domain.Record {
	return r.Extraction.Record
}

// BatchItem is one entry of a batch extraction.
type BatchItem struct {
	SourceID string
	Result   *ExtractionResult
	Err      error
}
