package driven

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// RecordStore persists extracted records keyed by DNI.
//
// Save upserts: non-empty fields overwrite the stored values and empty
// fields keep them, so re-scanning a better copy of a form only fills gaps.
// Every Save also appends a trace of the source the record came from.
type RecordStore interface {
	// Save stores a record. Returns domain.ErrMissingIdentifier if the
	// record's DNI is empty.
	Save(ctx context.Context, rec domain.Record, sourceID string) error

	// Get retrieves the stored record for a DNI.
	// Returns domain.ErrNotFound if there is none.
	Get(ctx context.Context, dni string) (*domain.Record, error)

	// List returns all stored records ordered by DNI.
	List(ctx context.Context) ([]domain.Record, error)

	// Documents returns the source traces saved for a DNI, oldest first.
	Documents(ctx context.Context, dni string) ([]domain.SourceTrace, error)
}
