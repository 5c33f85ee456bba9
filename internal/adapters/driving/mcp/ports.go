package mcp

import (
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Render runs the artifact pipeline.
	Render driving.RenderService

	// Resolver inlines CSS custom properties.
	Resolver driving.MarkupResolver

	// Catalog exposes the render history.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Render == nil {
		return ErrMissingRenderService
	}
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	// Catalog is optional; without it the history surfaces stay empty
	return nil
}
