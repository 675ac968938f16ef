package driven

import "github.com/custodia-labs/registro-ocr/internal/core/domain"

// FieldExtractor reads the registry form fields out of a transcript.
// Implementations are pure and total: they never fail, and a field that
// cannot be recovered is left empty.
type FieldExtractor interface {
	Extract(text string) domain.Extraction
}
