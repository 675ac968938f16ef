package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// It follows the same merge rules as the SQLite store.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	traces  map[string][]domain.SourceTrace
	now     func() time.Time
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
		traces:  make(map[string][]domain.SourceTrace),
		now:     time.Now,
	}
}

// Save merges rec into the stored record for its DNI and appends a trace.
func (s *RecordStore) Save(_ context.Context, rec domain.Record, sourceID string) error {
	dni := rec.Get(domain.FieldDNI)
	if dni == "" {
		return domain.ErrMissingIdentifier
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.records[dni]
	for _, f := range domain.Fields() {
		v := rec.Get(f)
		if isDateField(f) && !isDate(v) {
			v = ""
		}
		if v != "" {
			stored.Set(f, v)
		}
	}
	s.records[dni] = stored

	s.traces[dni] = append(s.traces[dni], domain.SourceTrace{
		ID:        uuid.NewString(),
		DNI:       dni,
		Kind:      "OCR",
		SourceID:  sourceID,
		CreatedAt: s.now().UTC(),
	})
	return nil
}

// Get retrieves the record stored under dni.
func (s *RecordStore) Get(_ context.Context, dni string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[dni]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// List returns all records ordered by DNI.
func (s *RecordStore) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dnis := make([]string, 0, len(s.records))
	for dni := range s.records {
		dnis = append(dnis, dni)
	}
	sort.Strings(dnis)

	records := make([]domain.Record, 0, len(dnis))
	for _, dni := range dnis {
		records = append(records, s.records[dni])
	}
	return records, nil
}

// Documents returns the traces saved under dni, oldest first.
func (s *RecordStore) Documents(_ context.Context, dni string) ([]domain.SourceTrace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.records[dni]; !ok {
		return nil, domain.ErrNotFound
	}
	traces := make([]domain.SourceTrace, len(s.traces[dni]))
	copy(traces, s.traces[dni])
	return traces, nil
}

func isDateField(f domain.Field) bool {
	switch f {
	case domain.FieldFechaNacimiento, domain.FieldFechaAlta, domain.FieldFechaBaja:
		return true
	}
	return false
}

func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
