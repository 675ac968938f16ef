package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

// ExtractInput is the input schema for the extract_record tool.
type ExtractInput struct {
	Text     string `json:"text" jsonschema:"the full OCR transcript of one registry form"`
	SourceID string `json:"source_id,omitempty" jsonschema:"identifier of the scanned document (default mcp)"`
	Save     bool   `json:"save,omitempty" jsonschema:"persist the record under its DNI"`
}

// ExtractOutput is the output schema for the extract_record tool.
type ExtractOutput struct {
	SourceID      string        `json:"source_id"`
	Fields        []FieldOutput `json:"fields"`
	LowConfidence []string      `json:"low_confidence"`
	Saved         bool          `json:"saved"`
}

// FieldOutput is one form field, in form order.
type FieldOutput struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Provenance string `json:"provenance"`
}

// GetRecordInput is the input schema for the get_record tool.
type GetRecordInput struct {
	DNI string `json:"dni" jsonschema:"the DNI the record is stored under"`
}

// GetRecordOutput is the output schema for the get_record tool.
type GetRecordOutput struct {
	Found   bool              `json:"found"`
	Record  map[string]string `json:"record,omitempty"`
	Sources []string          `json:"sources,omitempty"`
}

// defaultSourceID names transcripts submitted without a source.
const defaultSourceID = "mcp"

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_record",
		Description: "Extract the twelve registry-form fields from an OCR transcript",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_record",
		Description: "Get the stored record for a DNI",
	}, s.handleGetRecord)
}

// handleExtract handles the extract_record tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = defaultSourceID
	}

	result, err := s.ports.Extraction.Extract(ctx, &domain.RawDocument{SourceID: sourceID, Text: input.Text})
	if err != nil {
		return nil, ExtractOutput{}, fmt.Errorf("extracting: %w", err)
	}

	output := extractOutput(result)
	if input.Save {
		if err := s.ports.Extraction.Save(ctx, result); err != nil {
			return nil, ExtractOutput{}, fmt.Errorf("saving: %w", err)
		}
		output.Saved = true
	}
	return nil, output, nil
}

func extractOutput(result *driving.ExtractionResult) ExtractOutput {
	ex := result.Extraction
	output := ExtractOutput{
		SourceID:      result.SourceID,
		Fields:        make([]FieldOutput, 0, len(domain.Fields())),
		LowConfidence: []string{},
	}
	for _, f := range domain.Fields() {
		output.Fields = append(output.Fields, FieldOutput{
			Name:       f.String(),
			Value:      ex.Record.Get(f),
			Provenance: string(ex.Provenance(f)),
		})
	}
	for _, f := range ex.LowConfidence() {
		output.LowConfidence = append(output.LowConfidence, f.String())
	}
	return output
}

// handleGetRecord handles the get_record tool invocation.
func (s *Server) handleGetRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecordInput,
) (*mcp.CallToolResult, GetRecordOutput, error) {
	if s.ports.Records == nil {
		return nil, GetRecordOutput{}, nil
	}

	rec, err := s.ports.Records.Get(ctx, input.DNI)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, GetRecordOutput{}, nil
	}
	if err != nil {
		return nil, GetRecordOutput{}, fmt.Errorf("getting record: %w", err)
	}

	output := GetRecordOutput{Found: true, Record: rec.Map()}

	traces, err := s.ports.Records.Documents(ctx, input.DNI)
	if err != nil {
		return nil, GetRecordOutput{}, fmt.Errorf("listing documents: %w", err)
	}
	for i := range traces {
		output.Sources = append(output.Sources, traces[i].SourceID)
	}
	return nil, output, nil
}
