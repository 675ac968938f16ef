// Package mcp provides an MCP (Model Context Protocol) server adapter for registro.
// It lets AI assistants extract registry-form records from OCR transcripts
// and read back stored records.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")
