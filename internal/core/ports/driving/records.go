package driving

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// RecordService reads back persisted records.
type RecordService interface {
	// Get returns the record stored under a DNI.
	Get(ctx context.Context, dni string) (*domain.Record, error)

	// List returns every stored record, ordered by DNI.
	List(ctx context.Context) ([]domain.Record, error)

	// Documents returns the transcripts a record was extracted from,
	// oldest first.
	Documents(ctx context.Context, dni string) ([]domain.SourceTrace, error)
}
