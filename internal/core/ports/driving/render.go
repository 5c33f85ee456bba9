package driving

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

// RenderService turns chart markup into persisted artifacts.
type RenderService interface {
	// Render runs the artifact pipeline for a single request: name
	// sanitisation, directory resolution, vector write, raster
	// conversion and write. Raster degradation is non-fatal; directory
	// and write failures are returned as errors.
	Render(ctx context.Context, req domain.RenderRequest) (*domain.ArtifactResult, error)

	// RenderChart orchestrates a full chart render: option coercion,
	// theme palette application, the artifact pipeline, and catalog
	// recording when a catalog is configured.
	RenderChart(ctx context.Context, req domain.ChartRenderRequest) (*domain.ChartRenderResult, error)
}
