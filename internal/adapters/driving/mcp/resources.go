package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Stellium resources.
	uriScheme = "stellium://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the recent render history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "charts/recent",
		Name:        "recent-charts",
		Description: "Recently rendered charts from the catalog",
		MIMEType:    "application/json",
	}, s.handleRecentChartsResource)

	// Template for chart documents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "charts/{chartId}",
		Name:        "chart-document",
		Description: "SVG document of a catalogued chart",
		MIMEType:    "image/svg+xml",
	}, s.handleChartDocumentResource)
}

// handleRecentChartsResource returns the recent render history.
func (s *Server) handleRecentChartsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return emptyListResult(req.Params.URI), nil
	}

	records, err := s.ports.Catalog.Recent(ctx, defaultListLimit)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogDisabled) {
			return emptyListResult(req.Params.URI), nil
		}
		return nil, fmt.Errorf("listing charts: %w", err)
	}

	infos := make([]ChartRecordOutput, len(records))
	for i := range records {
		infos[i] = chartRecordOutput(&records[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling charts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleChartDocumentResource returns the persisted SVG of a catalogued chart.
func (s *Server) handleChartDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract chartId from URI: stellium://charts/{chartId}
	chartID := extractChartID(req.Params.URI)
	if chartID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Catalog.Get(ctx, chartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCatalogDisabled) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting chart: %w", err)
	}

	if record.SVGPath == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	markup, err := os.ReadFile(record.SVGPath)
	if err != nil {
		return nil, fmt.Errorf("reading chart document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "image/svg+xml",
			Text:     string(markup),
		}},
	}, nil
}

// emptyListResult is the degraded history when no catalog is configured.
func emptyListResult(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}

// extractChartID extracts the chart ID from a URI like stellium://charts/{chartId}.
func extractChartID(uri string) string {
	const prefix = uriScheme + "charts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if id == "recent" || strings.Contains(id, "/") {
		return ""
	}

	return id
}
