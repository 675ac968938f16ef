package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
	"github.com/custodia-labs/registro-ocr/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// ExtractionService runs transcripts through normalisation, fix-ups and
// field extraction.
type ExtractionService struct {
	normaliser driven.Normaliser
	fixups     driven.TextFixupPipeline
	extractor  driven.FieldExtractor
	records    driven.RecordStore
	validator  *RecordValidator
	workers    int
}

// ExtractionOption configures an ExtractionService.
type ExtractionOption func(*ExtractionService)

// WithFixups sets the fix-up pipeline run after normalisation.
func WithFixups(p driven.TextFixupPipeline) ExtractionOption {
	return func(s *ExtractionService) {
		s.fixups = p
	}
}

// WithRecordStore sets the store used by Save.
func WithRecordStore(store driven.RecordStore) ExtractionOption {
	return func(s *ExtractionService) {
		s.records = store
	}
}

// WithWorkers sets the batch concurrency. Values below 1 are ignored.
func WithWorkers(n int) ExtractionOption {
	return func(s *ExtractionService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(
	normaliser driven.Normaliser,
	extractor driven.FieldExtractor,
	opts ...ExtractionOption,
) *ExtractionService {
	s := &ExtractionService{
		normaliser: normaliser,
		extractor:  extractor,
		validator:  NewRecordValidator(),
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Normalise canonicalises a transcript and applies the fix-ups.
func (s *ExtractionService) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if s.normaliser == nil {
		return nil, domain.ErrNotImplemented
	}
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	result, err := s.normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.SourceID, err)
	}
	doc := result.Document

	if s.fixups != nil {
		content, err := s.fixups.Process(ctx, doc.Content)
		if err != nil {
			return nil, fmt.Errorf("fixups %s: %w", raw.SourceID, err)
		}
		doc.Content = content
	}
	return &doc, nil
}

// Extract reads the form fields of one transcript.
func (s *ExtractionService) Extract(ctx context.Context, raw *domain.RawDocument) (*driving.ExtractionResult, error) {
	if s.extractor == nil {
		return nil, domain.ErrNotImplemented
	}

	doc, err := s.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}

	logger.Section("Extract " + raw.SourceID)
	ex := s.extractor.Extract(doc.Content)
	for _, f := range ex.LowConfidence() {
		logger.Info("%s: %s is low confidence (%s)", raw.SourceID, f, ex.Provenance(f))
	}

	return &driving.ExtractionResult{
		SourceID:   raw.SourceID,
		Extraction: ex,
	}, nil
}

// ExtractBatch extracts raws concurrently, at most s.workers at a time.
func (s *ExtractionService) ExtractBatch(ctx context.Context, raws []domain.RawDocument) ([]driving.BatchItem, error) {
	items := make([]driving.BatchItem, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range raws {
		items[i].SourceID = raws[i].SourceID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Extract(gctx, &raws[i])
			if err != nil {
				logger.Warn("%s: %v", raws[i].SourceID, err)
			}
			items[i].Result = res
			items[i].Err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, fmt.Errorf("batch extraction: %w", err)
	}
	logger.Info("Extracted %d transcripts", len(raws))
	return items, nil
}

// Save validates and persists an extracted record. Dates that are not
// YYYY-MM-DD are stored empty; other invalid values reject the record.
func (s *ExtractionService) Save(ctx context.Context, result *driving.ExtractionResult) error {
	if s.records == nil {
		return domain.ErrNotImplemented
	}
	if result == nil {
		return domain.ErrInvalidInput
	}

	rec := result.Record()
	if rec.Get(domain.FieldDNI) == "" {
		return fmt.Errorf("save %s: %w", result.SourceID, domain.ErrMissingIdentifier)
	}

	rec, err := s.validator.PrepareForStorage(rec)
	if err != nil {
		return fmt.Errorf("save %s: %w", result.SourceID, err)
	}

	if err := s.records.Save(ctx, rec, result.SourceID); err != nil {
		return fmt.Errorf("save %s: %w", result.SourceID, err)
	}
	logger.Info("Saved DNI %s from %s", rec.Get(domain.FieldDNI), result.SourceID)
	return nil
}
