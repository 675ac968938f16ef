package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

func TestExtractDNI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid uri", "registro://records/30123456/documents", "30123456"},
		{"missing suffix", "registro://records/30123456", ""},
		{"wrong scheme", "file://records/30123456/documents", ""},
		{"nested path", "registro://records/a/b/documents", ""},
		{"empty dni", "registro://records//documents", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDNI(tt.uri))
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func storedRecord(dni, grado string) domain.Record {
	var rec domain.Record
	rec.Set(domain.FieldDNI, dni)
	rec.Set(domain.FieldGrado, grado)
	return rec
}

func TestServer_handleRecordsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil record service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}})
		require.NoError(t, err)

		result, err := server.handleRecordsResource(ctx, makeReadResourceRequest("registro://records"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns records", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Extraction: &mockExtractionService{},
			Records:    &mockRecordService{records: []domain.Record{storedRecord("30123456", "Cabo")}},
		})
		require.NoError(t, err)

		result, err := server.handleRecordsResource(ctx, makeReadResourceRequest("registro://records"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"DNI": "30123456"`)
		assert.Contains(t, result.Contents[0].Text, `"Grado": "Cabo"`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Extraction: &mockExtractionService{},
			Records:    &mockRecordService{err: errors.New("database error")},
		})
		require.NoError(t, err)

		_, err = server.handleRecordsResource(ctx, makeReadResourceRequest("registro://records"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing records")
	})
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	records := &mockRecordService{
		records: []domain.Record{storedRecord("30123456", "Cabo")},
		traces: []domain.SourceTrace{
			{ID: "t-1", DNI: "30123456", Kind: "OCR", SourceID: "scan-1.txt", CreatedAt: created},
		},
	}

	t.Run("returns traces", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}, Records: records})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx,
			makeReadResourceRequest("registro://records/30123456/documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"source_id": "scan-1.txt"`)
		assert.Contains(t, result.Contents[0].Text, `"created_at": "2024-05-01T10:00:00Z"`)
	})

	t.Run("unknown dni is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}, Records: records})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx,
			makeReadResourceRequest("registro://records/99999999/documents"))

		assert.Error(t, err)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}, Records: records})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx, makeReadResourceRequest("registro://records/x"))

		assert.Error(t, err)
	})

	t.Run("nil record service is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx,
			makeReadResourceRequest("registro://records/30123456/documents"))

		assert.Error(t, err)
	})
}
