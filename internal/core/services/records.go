package services

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService reads persisted records.
type RecordService struct {
	store driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// Get returns the record stored under dni.
func (s *RecordService) Get(ctx context.Context, dni string) (*domain.Record, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if dni == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, dni)
}

// List returns every stored record.
func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Documents returns the transcripts a record was extracted from.
func (s *RecordService) Documents(ctx context.Context, dni string) ([]domain.SourceTrace, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if dni == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Documents(ctx, dni)
}
