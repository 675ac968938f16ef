package driven

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// Normaliser canonicalises the text of an OCR transcript: Unicode form,
// punctuation variants and whitespace. Implementations must be idempotent.
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Normalise transforms a raw transcript into a normalised document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document is the transcript with its Content normalised.
	Document domain.Document
}
