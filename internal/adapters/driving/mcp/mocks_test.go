package mcp

import (
	"context"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	result  *driving.ExtractionResult
	err     error
	saveErr error
	saved   []*driving.ExtractionResult
}

func (m *mockExtractionService) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	return &domain.Document{SourceID: raw.SourceID, Content: raw.Text}, m.err
}

func (m *mockExtractionService) Extract(_ context.Context, raw *domain.RawDocument) (*driving.ExtractionResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.ExtractionResult{SourceID: raw.SourceID}, nil
}

func (m *mockExtractionService) ExtractBatch(_ context.Context, _ []domain.RawDocument) ([]driving.BatchItem, error) {
	return nil, m.err
}

func (m *mockExtractionService) Save(_ context.Context, result *driving.ExtractionResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, result)
	return nil
}

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	records []domain.Record
	traces  []domain.SourceTrace
	err     error
}

func (m *mockRecordService) Get(_ context.Context, dni string) (*domain.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].Get(domain.FieldDNI) == dni {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRecordService) List(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockRecordService) Documents(_ context.Context, dni string) ([]domain.SourceTrace, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, err := m.Get(context.Background(), dni); err != nil {
		return nil, err
	}
	return m.traces, nil
}
