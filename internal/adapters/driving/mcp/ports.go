package mcp

import (
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Extraction reads records out of transcripts.
	Extraction driving.ExtractionService

	// Records reads back persisted records. Optional: without it the
	// record tools and resources report nothing stored.
	Records driving.RecordService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	return nil
}
