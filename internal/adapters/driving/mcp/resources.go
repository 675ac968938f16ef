package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// uriScheme is the custom URI scheme for registro resources.
const uriScheme = "registro://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "All stored records, ordered by DNI",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{dni}/documents",
		Name:        "record-documents",
		Description: "Scanned documents a record was extracted from",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)
}

// handleRecordsResource returns every stored record.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return jsonResource(req.Params.URI, []domain.Record{})
	}

	recs, err := s.ports.Records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	return jsonResource(req.Params.URI, recs)
}

// handleDocumentsResource returns the document traces of one record.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// registro://records/{dni}/documents
	dni := extractDNI(req.Params.URI)
	if dni == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	traces, err := s.ports.Records.Documents(ctx, dni)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type traceInfo struct {
		ID        string `json:"id"`
		Kind      string `json:"kind"`
		SourceID  string `json:"source_id"`
		CreatedAt string `json:"created_at"`
	}

	infos := make([]traceInfo, len(traces))
	for i := range traces {
		infos[i] = traceInfo{
			ID:        traces[i].ID,
			Kind:      traces[i].Kind,
			SourceID:  traces[i].SourceID,
			CreatedAt: traces[i].CreatedAt.Format(time.RFC3339),
		}
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDNI extracts the DNI from a URI like registro://records/{dni}/documents.
func extractDNI(uri string) string {
	const prefix = uriScheme + "records/"
	const suffix = "/documents"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}
	dni := strings.TrimSuffix(uri, suffix)
	if strings.Contains(dni, "/") {
		return ""
	}
	return dni
}
